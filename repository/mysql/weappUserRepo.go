package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/weapp_gateway/models/entities"
)

// WeappUserRepository 定义了小程序用户资料的存储接口。
type WeappUserRepository interface {
	// UpsertUser 按 openId 插入或更新用户资料。
	// - 已存在时更新资料字段和 LastLogin，不改变 CreatedAt。
	UpsertUser(ctx context.Context, user *entities.WeappUser) error

	// GetUserByOpenID 根据 openId 查询用户资料。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetUserByOpenID(ctx context.Context, openID string) (*entities.WeappUser, error)
}

// weappUserRepository 是 WeappUserRepository 基于 GORM 的实现。
type weappUserRepository struct {
	db *gorm.DB
}

// NewWeappUserRepository 创建一个新的 weappUserRepository 实例。
func NewWeappUserRepository(db *gorm.DB) WeappUserRepository {
	return &weappUserRepository{db: db}
}

// UpsertUser 实现接口方法。
func (r *weappUserRepository) UpsertUser(ctx context.Context, user *entities.WeappUser) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"union_id", "nick_name", "avatar_url", "gender", "language",
			"city", "province", "country", "last_login", "updated_at",
		}),
	}).Create(user).Error
	if err != nil {
		return fmt.Errorf("weappUserRepo.UpsertUser: 保存用户资料失败 (OpenID: %s): %w", user.OpenID, err)
	}
	return nil
}

// GetUserByOpenID 实现接口方法。
func (r *weappUserRepository) GetUserByOpenID(ctx context.Context, openID string) (*entities.WeappUser, error) {
	var user entities.WeappUser
	err := r.db.WithContext(ctx).Where("open_id = ?", openID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, fmt.Errorf("weappUserRepo.GetUserByOpenID: 查询用户资料失败 (OpenID: %s): %w", openID, err)
	}
	return &user, nil
}
