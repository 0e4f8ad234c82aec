package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"retail_assistant/internal/domain/catalog"
	"retail_assistant/internal/domain/entities"
	mock_interfaces "retail_assistant/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func sequentialIDs() IDGenerator {
	n := 0
	return func(prefix string) string {
		n++
		return prefix + "-" + string(rune('0'+n))
	}
}

type orderFixture struct {
	uc       *OrderUseCase
	repo     *mock_interfaces.MockIOrderRepository
	notifier *mock_interfaces.MockINotifier
	session  *entities.Session
}

func newOrderFixture(t *testing.T) orderFixture {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)

	c := catalog.Default()
	validator := NewProductValidator(c)
	uc := NewOrderUseCase(c, validator, NewUpsellAdvisor(c, validator), repo, notifier, OrderOptions{
		SalesEmail:   "sales@example.com",
		Clock:        fixedClock,
		NewID:        sequentialIDs(),
		DeliveryDays: func() int { return 5 },
	})
	return orderFixture{uc: uc, repo: repo, notifier: notifier, session: entities.NewSession("s1", fixedNow)}
}

var jane = entities.Customer{Name: "Jane Doe", Email: "jane@example.com"}

func galaxy(qty int) OrderItemRequest {
	return OrderItemRequest{Category: "smartphones", Brand: "Samsung", Model: "Galaxy S23", Quantity: qty}
}

func assertTotals(t *testing.T, o entities.Order, subtotal, shipping, total string) {
	t.Helper()
	if money(o.Subtotal) != subtotal || money(o.ShippingCost) != shipping || money(o.Total) != total {
		t.Fatalf("expected %s/%s/%s, got %s/%s/%s", subtotal, shipping, total,
			money(o.Subtotal), money(o.ShippingCost), money(o.Total))
	}
}

func TestOrderUseCase_StartOrMerge(t *testing.T) {
	t.Run("pakistan has no shipping", func(t *testing.T) {
		f := newOrderFixture(t)
		p, err := f.uc.StartOrMerge(f.session, jane, "Pakistan", []OrderItemRequest{galaxy(2)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertTotals(t, p.Order, "2000.00", "0.00", "2000.00")
		if p.Order.ID != "ORD-1" || p.Order.Status != entities.OrderStatusPending || !p.RequiresConfirmation {
			t.Fatalf("unexpected preview: %+v", p)
		}
		if !strings.Contains(p.Summary, "2 x Samsung Galaxy S23") {
			t.Fatalf("summary missing item: %s", p.Summary)
		}
	})

	t.Run("united kingdom surcharge", func(t *testing.T) {
		f := newOrderFixture(t)
		p, err := f.uc.StartOrMerge(f.session, jane, "united kingdom", []OrderItemRequest{galaxy(2)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Order.Country != "United Kingdom" {
			t.Fatalf("expected canonical country, got %q", p.Order.Country)
		}
		assertTotals(t, p.Order, "2000.00", "240.00", "2240.00")
	})

	t.Run("every shipping rate holds the pricing invariant", func(t *testing.T) {
		for _, r := range catalog.Default().Countries() {
			f := newOrderFixture(t)
			p, err := f.uc.StartOrMerge(f.session, jane, r.Country, []OrderItemRequest{
				galaxy(1),
				{Category: "accessories", Model: "USB-C Cable", Quantity: 3},
			})
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", r.Country, err)
			}
			o := p.Order
			if !o.ShippingCost.Equal(o.Subtotal.Mul(r.Rate).Round(2)) || !o.Total.Equal(o.Subtotal.Add(o.ShippingCost)) {
				t.Fatalf("%s: invariant broken %s/%s/%s", r.Country, o.Subtotal, o.ShippingCost, o.Total)
			}
		}
	})

	t.Run("merge sums quantities without drift", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.StartOrMerge(f.session, jane, "Germany", []OrderItemRequest{galaxy(2)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p, err := f.uc.StartOrMerge(f.session, jane, "Germany", []OrderItemRequest{
			{Category: "SMARTPHONES", Brand: "samsung", Model: "galaxy s23", Quantity: 3},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p.Order.Items) != 1 || p.Order.Items["Samsung Galaxy S23"].Quantity != 5 {
			t.Fatalf("expected one line with quantity 5, got %+v", p.Order.Items)
		}

		fresh := newOrderFixture(t)
		scratch, err := fresh.uc.StartOrMerge(fresh.session, jane, "Germany", []OrderItemRequest{galaxy(5)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.Order.Total.Equal(scratch.Order.Total) || !p.Order.Subtotal.Equal(scratch.Order.Subtotal) {
			t.Fatalf("merge drifted: %s vs %s", p.Order.Total, scratch.Order.Total)
		}
	})

	t.Run("country is fixed at creation", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.StartOrMerge(f.session, jane, "Pakistan", []OrderItemRequest{galaxy(1)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p, err := f.uc.StartOrMerge(f.session, jane, "Canada", []OrderItemRequest{galaxy(1)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Order.Country != "Pakistan" || !p.Order.ShippingCost.IsZero() {
			t.Fatalf("country changed: %+v", p.Order)
		}
		if len(p.Notices) != 1 {
			t.Fatalf("expected a country notice, got %v", p.Notices)
		}
	})

	t.Run("one unresolved item fails the whole call", func(t *testing.T) {
		f := newOrderFixture(t)
		first, err := f.uc.StartOrMerge(f.session, jane, "Pakistan", []OrderItemRequest{galaxy(1)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = f.uc.StartOrMerge(f.session, jane, "Pakistan", []OrderItemRequest{
			galaxy(4),
			{Category: "smartphones", Brand: "Samsung", Model: "Galaxy S23", Color: "Purple", Quantity: 1},
			{Category: "toasters", Model: "Deluxe", Quantity: 1},
		})
		var unresolved *UnresolvedItemsError
		if !errors.As(err, &unresolved) || !errors.Is(err, ErrCatalogLookup) {
			t.Fatalf("expected UnresolvedItemsError, got %v", err)
		}
		if len(unresolved.Items) != 2 {
			t.Fatalf("expected two unresolved items, got %+v", unresolved.Items)
		}
		if unresolved.Items[0].Cause.Reason != ReasonColorUnavailable || unresolved.Items[1].Cause.Reason != ReasonCategoryUnknown {
			t.Fatalf("unexpected causes: %+v", unresolved.Items)
		}
		if len(unresolved.Suggestions) == 0 {
			t.Fatalf("expected suggestions")
		}

		current := f.session.PendingOrder()
		if current.Items["Samsung Galaxy S23"].Quantity != 1 || !current.Total.Equal(first.Order.Total) {
			t.Fatalf("pending order mutated: %+v", current)
		}
	})

	t.Run("unknown country", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.uc.StartOrMerge(f.session, jane, "Atlantis", []OrderItemRequest{galaxy(1)})
		var lookup *CatalogLookupError
		if !errors.As(err, &lookup) || lookup.Reason != ReasonCountryUnknown {
			t.Fatalf("expected CountryUnknown, got %v", err)
		}
		if f.session.PendingOrder() != nil {
			t.Fatalf("no order must be created")
		}
	})

	t.Run("invalid customer", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.uc.StartOrMerge(f.session, entities.Customer{Name: "Jane", Email: "not-an-email"}, "Pakistan", []OrderItemRequest{galaxy(1)})
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "email" {
			t.Fatalf("expected email ValidationError, got %v", err)
		}
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.uc.StartOrMerge(f.session, jane, "Pakistan", []OrderItemRequest{galaxy(0)})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestOrderUseCase_AddItem(t *testing.T) {
	t.Run("requires a pending order", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.uc.AddItem(f.session, galaxy(1))
		if !errors.Is(err, ErrState) || err.Error() != "no pending order" {
			t.Fatalf("expected no pending order, got %v", err)
		}
	})

	t.Run("reprices from the full item map", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.StartOrMerge(f.session, jane, "UK", []OrderItemRequest{galaxy(2)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p, err := f.uc.AddItem(f.session, OrderItemRequest{Category: "headphones", Brand: "apple", Model: "airpods pro 2", Color: "white", Quantity: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertTotals(t, p.Order, "2500.00", "300.00", "2800.00")
		if p.Order.Items["Apple AirPods Pro 2"].Color != "White" {
			t.Fatalf("expected canonical color, got %+v", p.Order.Items)
		}
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.StartOrMerge(f.session, jane, "UK", []OrderItemRequest{galaxy(1)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, qty := range []int{0, -1} {
			if _, err := f.uc.AddItem(f.session, galaxy(qty)); !errors.Is(err, ErrValidation) {
				t.Fatalf("quantity %d: expected ErrValidation, got %v", qty, err)
			}
		}
	})

	t.Run("a second color mixes the line and says so", func(t *testing.T) {
		f := newOrderFixture(t)
		black := galaxy(1)
		black.Color = "black"
		if _, err := f.uc.StartOrMerge(f.session, jane, "UK", []OrderItemRequest{black}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		green := galaxy(1)
		green.Color = "Green"
		p, err := f.uc.AddItem(f.session, green)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		line := p.Order.Items["Samsung Galaxy S23"]
		if line.Quantity != 2 || line.Color != "" || !line.MixedColors {
			t.Fatalf("unexpected line: %+v", line)
		}
		if len(p.Notices) != 1 || !strings.Contains(p.Notices[0], "Samsung Galaxy S23") {
			t.Fatalf("expected a color notice, got %v", p.Notices)
		}
		if !strings.Contains(p.Summary, "2 x Samsung Galaxy S23 (mixed colors)") {
			t.Fatalf("summary must not claim a single color: %s", p.Summary)
		}
	})

	t.Run("unknown color leaves the order unchanged", func(t *testing.T) {
		f := newOrderFixture(t)
		before, err := f.uc.StartOrMerge(f.session, jane, "UK", []OrderItemRequest{galaxy(2)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err = f.uc.AddItem(f.session, OrderItemRequest{Category: "smartphones", Brand: "Apple", Model: "iPhone 14", Color: "Orange", Quantity: 1})
		var lookup *CatalogLookupError
		if !errors.As(err, &lookup) || lookup.Reason != ReasonColorUnavailable {
			t.Fatalf("expected ColorUnavailable, got %v", err)
		}
		after := f.session.PendingOrder()
		if len(after.Items) != 1 || !after.Total.Equal(before.Order.Total) || !after.Subtotal.Equal(before.Order.Subtotal) {
			t.Fatalf("order mutated: %+v", after)
		}
	})
}

func TestOrderUseCase_AcceptUpsell(t *testing.T) {
	t.Run("canada wireless charger", func(t *testing.T) {
		f := newOrderFixture(t)
		p, err := f.uc.StartOrMerge(f.session, jane, "Canada", []OrderItemRequest{galaxy(2)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p.Upsell) == 0 {
			t.Fatalf("expected an upsell offer")
		}

		p, err = f.uc.AcceptUpsell(f.session, "wireless charger", 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertTotals(t, p.Order, "2050.00", "328.00", "2378.00")
		if f.session.UpsellOffer() != nil {
			t.Fatalf("offer must be consumed")
		}
	})

	t.Run("rejects a non-positive quantity and keeps the offer", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.StartOrMerge(f.session, jane, "Canada", []OrderItemRequest{galaxy(1)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, qty := range []int{0, -2} {
			if _, err := f.uc.AcceptUpsell(f.session, "wireless charger", qty); !errors.Is(err, ErrValidation) {
				t.Fatalf("quantity %d: expected ErrValidation, got %v", qty, err)
			}
		}
		if len(f.session.UpsellOffer()) == 0 {
			t.Fatalf("offer must survive a rejected quantity")
		}
		if len(f.session.PendingOrder().Items) != 1 {
			t.Fatalf("order mutated: %+v", f.session.PendingOrder().Items)
		}
	})

	t.Run("no pending order", func(t *testing.T) {
		f := newOrderFixture(t)
		f.session.SetUpsellOffer([]string{"Phone Case"})
		if _, err := f.uc.AcceptUpsell(f.session, "case", 1); !errors.Is(err, ErrState) {
			t.Fatalf("expected ErrState, got %v", err)
		}
		if f.session.UpsellOffer() != nil {
			t.Fatalf("offer must be cleared")
		}
	})
}

func TestOrderUseCase_Confirm(t *testing.T) {
	t.Run("persists then notifies", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.StartOrMerge(f.session, jane, "United Kingdom", []OrderItemRequest{galaxy(2)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var saved entities.Order
		gomock.InOrder(
			f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.Order) error {
				saved = o
				return nil
			}),
			f.notifier.EXPECT().Send(gomock.Any(), "jane@example.com", "Your Order Confirmation - MayfairTech", gomock.Any()).Return(true),
			f.notifier.EXPECT().Send(gomock.Any(), "sales@example.com", "New Customer Order Received", gomock.Any()).Return(true),
		)

		res, err := f.uc.Confirm(context.Background(), f.session)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Status != entities.OrderStatusConfirmed || saved.ID != res.Order.ID {
			t.Fatalf("unexpected saved order: %+v", saved)
		}
		if !saved.OrderDate.Equal(fixedNow) || !saved.DeliveryDate.Equal(fixedNow.AddDate(0, 0, 5)) {
			t.Fatalf("unexpected dates: %v %v", saved.OrderDate, saved.DeliveryDate)
		}
		if !saved.Total.Equal(decimal.RequireFromString("2240")) {
			t.Fatalf("unexpected total %s", saved.Total)
		}
		if len(res.Warnings) != 0 || !strings.Contains(res.Message, "March 08, 2025") {
			t.Fatalf("unexpected result: %+v", res)
		}
		if f.session.PendingOrder() != nil {
			t.Fatalf("pending slot must be cleared")
		}

		_, err = f.uc.Confirm(context.Background(), f.session)
		if !errors.Is(err, ErrState) {
			t.Fatalf("second confirm: expected ErrState, got %v", err)
		}
	})

	t.Run("notification failures are warnings", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.StartOrMerge(f.session, jane, "Pakistan", []OrderItemRequest{galaxy(1)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false).Times(2)

		res, err := f.uc.Confirm(context.Background(), f.session)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.Status != entities.OrderStatusConfirmed || len(res.Warnings) != 2 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("persistence failure keeps the order pending", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.StartOrMerge(f.session, jane, "Pakistan", []OrderItemRequest{galaxy(1)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		storeErr := errors.New("table unavailable")
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(storeErr)

		_, err := f.uc.Confirm(context.Background(), f.session)
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error, got %v", err)
		}
		if o := f.session.PendingOrder(); o == nil || o.Status != entities.OrderStatusPending {
			t.Fatalf("order must stay pending")
		}
	})

	t.Run("no pending order", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.Confirm(context.Background(), f.session); !errors.Is(err, ErrState) {
			t.Fatalf("expected ErrState, got %v", err)
		}
	})
}

func TestOrderUseCase_Cancel(t *testing.T) {
	f := newOrderFixture(t)
	if _, err := f.uc.StartOrMerge(f.session, jane, "Pakistan", []OrderItemRequest{galaxy(1)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o, err := f.uc.Cancel(f.session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != entities.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", o.Status)
	}

	_, err = f.uc.AddItem(f.session, galaxy(1))
	if !errors.Is(err, ErrState) || !strings.Contains(err.Error(), "no pending order") {
		t.Fatalf("expected no pending order, got %v", err)
	}
	if _, err := f.uc.Cancel(f.session); !errors.Is(err, ErrState) {
		t.Fatalf("expected ErrState, got %v", err)
	}
}
