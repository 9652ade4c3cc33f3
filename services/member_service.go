package services

import (
	"context"
	"errors"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dbctx"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/repositories"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
	"gorm.io/gorm"
)

type MemberService struct {
	tm      *dbctx.Manager
	members repositories.MemberRepository
}

func NewMemberService(tm *dbctx.Manager, members repositories.MemberRepository) *MemberService {
	return &MemberService{tm: tm, members: members}
}

// Join registers member and returns its id. Names are unique: the lookup
// below gives the friendly error, the unique index on members.name closes the
// race between two concurrent joins.
func (s *MemberService) Join(ctx context.Context, member *models.Member) (uint, error) {
	if err := member.Validate(); err != nil {
		return 0, err
	}

	err := s.tm.ReadWrite(ctx, func(dbc dbctx.Context) error {
		if err := s.validateDuplicateMember(dbc, member.Name, 0); err != nil {
			return err
		}
		if err := s.members.Save(dbc, member); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateMember
			}
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	utils.InfoLogger.Printf("New member joined (ID=%d)", member.ID)
	return member.ID, nil
}

func (s *MemberService) validateDuplicateMember(dbc dbctx.Context, name string, selfID uint) error {
	found, err := s.members.FindByName(dbc, name)
	if err != nil {
		return err
	}
	for _, m := range found {
		if m.ID != selfID {
			return ErrDuplicateMember
		}
	}
	return nil
}

func (s *MemberService) FindMembers(ctx context.Context) ([]*models.Member, error) {
	var members []*models.Member
	err := s.tm.ReadOnly(ctx, func(dbc dbctx.Context) error {
		found, err := s.members.FindAll(dbc)
		members = found
		return err
	})
	return members, err
}

func (s *MemberService) FindOne(ctx context.Context, id uint) (*models.Member, error) {
	var member *models.Member
	err := s.tm.ReadOnly(ctx, func(dbc dbctx.Context) error {
		found, err := s.members.FindOne(dbc, id)
		if err != nil {
			return translateNotFound(err, ErrMemberNotFound)
		}
		member = found
		return nil
	})
	return member, err
}

// Update renames the member with id.
func (s *MemberService) Update(ctx context.Context, id uint, name string) error {
	return s.tm.ReadWrite(ctx, func(dbc dbctx.Context) error {
		member, err := s.members.FindOne(dbc, id)
		if err != nil {
			return translateNotFound(err, ErrMemberNotFound)
		}
		if err := member.UpdateName(name); err != nil {
			return err
		}
		if err := s.validateDuplicateMember(dbc, name, member.ID); err != nil {
			return err
		}
		if err := s.members.Save(dbc, member); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateMember
			}
			return err
		}
		return nil
	})
}
