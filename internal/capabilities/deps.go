package capabilities

import (
	"context"
	"time"

	"voice-bridge/internal/clients/calendar"
	"voice-bridge/internal/clients/payments"
	"voice-bridge/internal/store"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=deps.go -destination=mocks_test.go -package=capabilities

// CalendarService books and queries agent calendars
type CalendarService interface {
	FreeBusy(ctx context.Context, calendarID string, from, to time.Time) ([]calendar.Busy, error)
	CreateEvent(ctx context.Context, calendarID string, event calendar.Event, timezone string) (calendar.Event, error)
	ListEvents(ctx context.Context, calendarID string, from, to time.Time) ([]calendar.Event, error)
}

// SMSSender texts the caller
type SMSSender interface {
	SendSMS(ctx context.Context, from, to, body string) (string, error)
}

// EmailSender sends confirmation emails
type EmailSender interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

// PaymentLinks creates hosted payment pages
type PaymentLinks interface {
	CreatePaymentLink(ctx context.Context, req payments.LinkRequest) (string, error)
}

// CatalogStore is the per-account product catalog
type CatalogStore interface {
	SearchCatalogProducts(ctx context.Context, accountID uuid.UUID, query string, limit int) ([]store.CatalogProduct, error)
	GetCatalogProductBySKU(ctx context.Context, accountID uuid.UUID, sku string) (store.CatalogProduct, error)
	CreateCatalogOrder(ctx context.Context, params store.CreateCatalogOrderParams) (store.CatalogOrder, error)
	GetCatalogOrder(ctx context.Context, accountID, orderID uuid.UUID) (store.CatalogOrder, error)
}

// Dependencies are the collaborators behind the built-in tools. A nil
// collaborator leaves its tools unregistered.
type Dependencies struct {
	Calendar    CalendarService
	SMS         SMSSender
	Email       EmailSender
	EmailFrom   string
	Payments    PaymentLinks
	PaymentsURL string
	Catalog     CatalogStore
	DefaultTZ   string
}

// BuiltinTools assembles every tool whose collaborators are available
func BuiltinTools(deps Dependencies) []Tool {
	var tools []Tool
	if deps.Calendar != nil {
		tools = append(tools, calendarTools(deps.Calendar, deps.SMS, deps.DefaultTZ)...)
	}
	if deps.SMS != nil || deps.Email != nil {
		tools = append(tools, messagingTools(deps.SMS, deps.Email, deps.EmailFrom)...)
	}
	if deps.Payments != nil && deps.SMS != nil {
		tools = append(tools, paymentTools(deps.Payments, deps.SMS, deps.PaymentsURL)...)
	}
	if deps.Catalog != nil {
		tools = append(tools, catalogTools(deps.Catalog)...)
	}
	return tools
}
