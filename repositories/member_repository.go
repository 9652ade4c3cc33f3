package repositories

import (
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dbctx"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRepository interface {
	Save(dbc dbctx.Context, member *models.Member) error
	FindOne(dbc dbctx.Context, id uint) (*models.Member, error)
	FindAll(dbc dbctx.Context) ([]*models.Member, error)
	FindByName(dbc dbctx.Context, name string) ([]*models.Member, error)
	Count(dbc dbctx.Context) (int64, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Save inserts a new member or writes every column of an existing one.
func (r *memberRepository) Save(dbc dbctx.Context, member *models.Member) error {
	return dbc.DB(r.db).Omit(clause.Associations).Save(member).Error
}

// FindOne returns gorm.ErrRecordNotFound when no member has id.
func (r *memberRepository) FindOne(dbc dbctx.Context, id uint) (*models.Member, error) {
	var member models.Member
	if err := dbc.DB(r.db).First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindAll(dbc dbctx.Context) ([]*models.Member, error) {
	var members []*models.Member
	if err := dbc.DB(r.db).Order("id").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) FindByName(dbc dbctx.Context, name string) ([]*models.Member, error) {
	var members []*models.Member
	if err := dbc.DB(r.db).Where("name = ?", name).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) Count(dbc dbctx.Context) (int64, error) {
	var count int64
	if err := dbc.DB(r.db).Model(&models.Member{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
