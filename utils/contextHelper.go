package utils

import (
	"context"

	"github.com/mosaicerp/mosaic_backend/appctx"
)

var (
	ContextKeyToken         = appctx.ContextKeyToken
	ContextKeyBusinessId    = appctx.ContextKeyBusinessId
	ContextKeyUserId        = appctx.ContextKeyUserId
	ContextKeyUserName      = appctx.ContextKeyUserName
	ContextKeyBranchId      = appctx.ContextKeyBranchId
	ContextKeyCorrelationId = appctx.ContextKeyCorrelationId
)

func GetTokenFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyToken)
}

func GetBusinessIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyBusinessId)
}

func GetUserIdFromContext(ctx context.Context) (int, bool) {
	return appctx.GetInt(ctx, ContextKeyUserId)
}

func GetUserNameFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyUserName)
}

func GetCorrelationIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyCorrelationId)
}

func SetTokenInContext(ctx context.Context, token string) context.Context {
	return appctx.Set(ctx, ContextKeyToken, token)
}

func SetBusinessIdInContext(ctx context.Context, businessId string) context.Context {
	return appctx.Set(ctx, ContextKeyBusinessId, businessId)
}

func SetUserIdInContext(ctx context.Context, userId int) context.Context {
	return appctx.Set(ctx, ContextKeyUserId, userId)
}

func SetUserNameInContext(ctx context.Context, userName string) context.Context {
	return appctx.Set(ctx, ContextKeyUserName, userName)
}

func SetCorrelationIdInContext(ctx context.Context, correlationId string) context.Context {
	return appctx.Set(ctx, ContextKeyCorrelationId, correlationId)
}
