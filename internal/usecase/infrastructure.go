package usecase

import (
	"context"

	"github.com/zelezara-doo/shop-backend/internal/domain"
)

// EmailSender — почтовый канал уведомлений. Ошибки отправки не влияют
// на судьбу уже зафиксированного заказа.
type EmailSender interface {
	SendOrderNotification(ctx context.Context, order *domain.Order) error
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

type ImagesInfra interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
	CleanupImages(keys []string)
}
