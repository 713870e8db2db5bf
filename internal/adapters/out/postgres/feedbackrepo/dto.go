// Package feedbackrepo persists feedback aggregates, one row per customer,
// courier and courier date.
package feedbackrepo

import (
	"time"

	"fulfillment/internal/adapters/out/postgres/pgdate"
	"fulfillment/internal/core/domain/model/feedback"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeedbackDTO is the feedback table row. The composite unique index is the
// conflict target of the packing upsert.
type FeedbackDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_feedback_key,priority:1"`
	CustomerName        string    `gorm:"not null"`
	CourierName         string    `gorm:"type:varchar(32);not null;uniqueIndex:ux_feedback_key,priority:2"`
	CourierDate         time.Time `gorm:"type:date;not null;uniqueIndex:ux_feedback_key,priority:3;index"`
	InvoiceCount        int       `gorm:"not null;default:0"`
	NoOfBox             *int
	Weight              *decimal.Decimal `gorm:"type:numeric(10,2)"`
	StockReceived       *bool
	StocksOK            *bool `gorm:"column:stocks_ok"`
	FollowUp            string
	FeedbackTime        *time.Time
	IssueResolvedTime   *time.Time `gorm:"index"`
	DispatchConfirmedAt *time.Time
}

func (FeedbackDTO) TableName() string {
	return "feedback"
}

func fromDomain(f *feedback.Feedback) FeedbackDTO {
	key := f.Key()
	return FeedbackDTO{
		ID:                  f.ID().Raw(),
		CustomerID:          key.CustomerID.Raw(),
		CustomerName:        f.CustomerName(),
		CourierName:         key.Courier.String(),
		CourierDate:         pgdate.ToColumn(key.CourierDate),
		InvoiceCount:        f.InvoiceCount(),
		NoOfBox:             f.NoOfBox(),
		Weight:              f.Weight(),
		StockReceived:       f.StockReceived().Bool(),
		StocksOK:            f.StocksOK().Bool(),
		FollowUp:            f.FollowUp(),
		FeedbackTime:        f.FeedbackTime(),
		IssueResolvedTime:   f.IssueResolvedTime(),
		DispatchConfirmedAt: f.DispatchConfirmedAt(),
	}
}

func toDomain(dto FeedbackDTO, loc *time.Location) (*feedback.Feedback, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFrom(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	courier, err := kernel.ParseCourier(dto.CourierName)
	if err != nil {
		return nil, err
	}
	key, err := feedback.NewKey(customerID, courier, pgdate.FromColumn(dto.CourierDate, loc))
	if err != nil {
		return nil, err
	}

	return feedback.RestoreFeedback(feedback.Snapshot{
		ID:                  id,
		Key:                 key,
		CustomerName:        dto.CustomerName,
		InvoiceCount:        dto.InvoiceCount,
		NoOfBox:             dto.NoOfBox,
		Weight:              dto.Weight,
		StockReceived:       feedback.TriStateFromBool(dto.StockReceived),
		StocksOK:            feedback.TriStateFromBool(dto.StocksOK),
		FollowUp:            dto.FollowUp,
		FeedbackTime:        dto.FeedbackTime,
		IssueResolvedTime:   dto.IssueResolvedTime,
		DispatchConfirmedAt: dto.DispatchConfirmedAt,
	})
}

func toDomainList(dtos []FeedbackDTO, loc *time.Location) ([]*feedback.Feedback, error) {
	rows := make([]*feedback.Feedback, 0, len(dtos))
	for _, dto := range dtos {
		f, err := toDomain(dto, loc)
		if err != nil {
			return nil, err
		}
		rows = append(rows, f)
	}
	return rows, nil
}
