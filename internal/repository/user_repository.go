package repository

import (
	"context"

	"paridhan/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。無ければ ErrNotFound。
	FindByID(ctx context.Context, userID int64) (model.User, error)
	//メールからユーザーを一件取得する。
	FindByEmail(ctx context.Context, email string) (model.User, error)
}
