package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"

	"github.com/Xushengqwer/weapp_gateway/models/entities"
	"github.com/Xushengqwer/weapp_gateway/models/vo"
	"github.com/Xushengqwer/weapp_gateway/repository/mysql"
)

// UserService 管理登录过的小程序用户资料。
// - 资料来自鉴权网关返回的 user_info，每次登录成功后覆盖写入。
type UserService interface {
	// RecordLogin 保存登录用户的资料并刷新最近登录时间。
	// 参数:
	//  - userInfo: 本次登录解析出的用户资料，OpenID 不能为空。
	RecordLogin(ctx context.Context, userInfo *vo.UserInfo) error

	// GetProfile 查询已保存的用户资料。
	// - 用户从未登录过时返回 commonerrors.ErrRepoNotFound。
	GetProfile(ctx context.Context, openID string) (*vo.ProfileVO, error)
}

type userService struct {
	repo   mysql.WeappUserRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewUserService 创建 UserService。
func NewUserService(repo mysql.WeappUserRepository, logger *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// RecordLogin 实现接口方法
func (s *userService) RecordLogin(ctx context.Context, userInfo *vo.UserInfo) error {
	if userInfo == nil || userInfo.OpenID == "" {
		return errors.New("userService.RecordLogin: 用户资料缺少 openId")
	}

	user := &entities.WeappUser{
		OpenID:    userInfo.OpenID,
		UnionID:   userInfo.UnionID,
		NickName:  userInfo.NickName,
		AvatarURL: userInfo.AvatarURL,
		Gender:    userInfo.Gender,
		Language:  userInfo.Language,
		City:      userInfo.City,
		Province:  userInfo.Province,
		Country:   userInfo.Country,
		LastLogin: s.now(),
	}
	if err := s.repo.UpsertUser(ctx, user); err != nil {
		s.logger.Error("保存登录用户资料失败", zap.String("openid", userInfo.OpenID), zap.Error(err))
		return fmt.Errorf("userService.RecordLogin: %w", err)
	}

	s.logger.Debug("已记录用户登录", zap.String("openid", userInfo.OpenID))
	return nil
}

// GetProfile 实现接口方法
func (s *userService) GetProfile(ctx context.Context, openID string) (*vo.ProfileVO, error) {
	user, err := s.repo.GetUserByOpenID(ctx, openID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		s.logger.Error("查询用户资料失败", zap.String("openid", openID), zap.Error(err))
		return nil, fmt.Errorf("userService.GetProfile: %w", commonerrors.ErrSystemError)
	}

	return &vo.ProfileVO{
		OpenID:    user.OpenID,
		NickName:  user.NickName,
		AvatarURL: user.AvatarURL,
		Gender:    user.Gender,
		Province:  user.Province,
		City:      user.City,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}, nil
}
