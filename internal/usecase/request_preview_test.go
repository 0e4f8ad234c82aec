package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"retail_assistant/internal/domain/entities"
	mock_interfaces "retail_assistant/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var validContact = entities.ContactRequest{
	Name:    "Ali Khan",
	Email:   "ali@example.com",
	Phone:   "+92 300 1234567",
	Subject: "Bulk order",
	Message: "I would like a quote for twenty laptops.",
}

var validComplaint = entities.Complaint{
	Name:      "Sara Ahmed",
	Email:     "sara@example.com",
	OrderID:   "ord-1",
	Complaint: "The charger stopped working after a week.",
}

func TestRequestPreviewEngine_Protocol(t *testing.T) {
	ctx := context.Background()
	hookCalls := 0
	engine := NewRequestPreviewEngine(RequestPreviewConfig[string]{
		Kind:     entities.RequestKindContact,
		IDPrefix: "REQ",
		Clock:    fixedClock,
		NewID:    sequentialIDs(),
		Summarize: func(id, payload string) string {
			return id + ": " + payload
		},
		OnConfirm: func(_ context.Context, req entities.PendingRequest[string]) (RequestResolution, error) {
			hookCalls++
			if req.Payload == "fail" {
				return RequestResolution{}, errors.New("hook failed")
			}
			return RequestResolution{Message: "done"}, nil
		},
	})

	t.Run("unsupported action is checked first", func(t *testing.T) {
		s := entities.NewSession("s1", fixedNow)
		_, err := engine.Resolve(ctx, s, "maybe")
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Message != "unsupported action" {
			t.Fatalf("expected unsupported action, got %v", err)
		}
	})

	t.Run("missing request", func(t *testing.T) {
		s := entities.NewSession("s1", fixedNow)
		for _, action := range []string{ActionConfirm, ActionCancel} {
			_, err := engine.Resolve(ctx, s, action)
			if !errors.Is(err, ErrState) || err.Error() != "no pending request" {
				t.Fatalf("%s: expected no pending request, got %v", action, err)
			}
		}
	})

	t.Run("preview then confirm", func(t *testing.T) {
		s := entities.NewSession("s1", fixedNow)
		p, err := engine.CreatePreview(s, "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.RequiresConfirmation || !strings.HasPrefix(p.ID, "REQ-") || p.Summary != p.ID+": hello" {
			t.Fatalf("unexpected preview: %+v", p)
		}
		pending, ok := engine.Pending(s)
		if !ok || pending.Status != entities.RequestStatusPending || !pending.CreatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected pending request: %+v", pending)
		}

		res, err := engine.Resolve(ctx, s, " CONFIRM ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusConfirmed || res.ID != p.ID || res.Message != "done" {
			t.Fatalf("unexpected resolution: %+v", res)
		}
		if _, ok := engine.Pending(s); ok {
			t.Fatalf("pending slot must be cleared")
		}
	})

	t.Run("hook failure keeps the request pending", func(t *testing.T) {
		s := entities.NewSession("s1", fixedNow)
		if _, err := engine.CreatePreview(s, "fail"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := engine.Resolve(ctx, s, ActionConfirm); err == nil {
			t.Fatalf("expected hook error")
		}
		if _, ok := engine.Pending(s); !ok {
			t.Fatalf("request must stay pending")
		}
	})

	t.Run("cancel skips the hook", func(t *testing.T) {
		s := entities.NewSession("s1", fixedNow)
		if _, err := engine.CreatePreview(s, "hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := hookCalls
		res, err := engine.Resolve(ctx, s, ActionCancel)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusCancelled || hookCalls != before {
			t.Fatalf("unexpected cancel: %+v hook_calls=%d", res, hookCalls-before)
		}
	})
}

func TestContactUseCase(t *testing.T) {
	ctx := context.Background()

	newContact := func(t *testing.T) (*RequestPreviewEngine[entities.ContactRequest], *mock_interfaces.MockINotifier) {
		ctrl := gomock.NewController(t)
		n := mock_interfaces.NewMockINotifier(ctrl)
		return NewContactUseCase(n, ContactOptions{CompanyEmail: "team@example.com", Clock: fixedClock, NewID: sequentialIDs()}), n
	}

	t.Run("validation", func(t *testing.T) {
		uc, _ := newContact(t)
		cases := map[string]func(c *entities.ContactRequest){
			"name":    func(c *entities.ContactRequest) { c.Name = "A" },
			"email":   func(c *entities.ContactRequest) { c.Email = "nope" },
			"phone":   func(c *entities.ContactRequest) { c.Phone = "12ab" },
			"subject": func(c *entities.ContactRequest) { c.Subject = "Hi" },
			"message": func(c *entities.ContactRequest) { c.Message = "too short" },
		}
		for field, mutate := range cases {
			t.Run(field, func(t *testing.T) {
				c := validContact
				mutate(&c)
				_, err := uc.CreatePreview(entities.NewSession("s1", fixedNow), c)
				var verr *ValidationError
				if !errors.As(err, &verr) || verr.Field != field {
					t.Fatalf("expected ValidationError on %s, got %v", field, err)
				}
			})
		}
	})

	t.Run("phone is optional", func(t *testing.T) {
		uc, _ := newContact(t)
		c := validContact
		c.Phone = ""
		if _, err := uc.CreatePreview(entities.NewSession("s1", fixedNow), c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("confirm notifies customer and company", func(t *testing.T) {
		uc, n := newContact(t)
		s := entities.NewSession("s1", fixedNow)
		p, err := uc.CreatePreview(s, validContact)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(p.ID, "CTC-") {
			t.Fatalf("unexpected id %q", p.ID)
		}

		n.EXPECT().Send(gomock.Any(), "ali@example.com", gomock.Any(), gomock.Any()).Return(true)
		n.EXPECT().Send(gomock.Any(), "team@example.com", "New Contact Request: Bulk order", gomock.Any()).Return(false)

		res, err := uc.Resolve(ctx, s, ActionConfirm)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusConfirmed || len(res.Warnings) != 1 {
			t.Fatalf("unexpected resolution: %+v", res)
		}
	})
}

func TestContactUseCase_ConfirmMessages(t *testing.T) {
	cases := []struct {
		name     string
		customer bool
		company  bool
		want     string
		warnings int
	}{
		{"both sent", true, true, "has been sent to our team and a confirmation was emailed", 0},
		{"team only", false, true, "could not email you a confirmation", 1},
		{"customer only", true, false, "could not reach our team", 1},
		{"nothing sent", false, false, "could not send your request CTC-", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			n := mock_interfaces.NewMockINotifier(ctrl)
			uc := NewContactUseCase(n, ContactOptions{CompanyEmail: "team@example.com", Clock: fixedClock, NewID: sequentialIDs()})
			s := entities.NewSession("s1", fixedNow)
			if _, err := uc.CreatePreview(s, validContact); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			n.EXPECT().Send(gomock.Any(), "ali@example.com", gomock.Any(), gomock.Any()).Return(tc.customer)
			n.EXPECT().Send(gomock.Any(), "team@example.com", gomock.Any(), gomock.Any()).Return(tc.company)

			res, err := uc.Resolve(context.Background(), s, ActionConfirm)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(res.Message, tc.want) || len(res.Warnings) != tc.warnings {
				t.Fatalf("unexpected resolution: %+v", res)
			}
			if strings.Contains(res.Message, "recorded") {
				t.Fatalf("contact requests are not stored: %q", res.Message)
			}
		})
	}
}

func TestComplaintUseCase(t *testing.T) {
	ctx := context.Background()

	type fixture struct {
		uc       *RequestPreviewEngine[entities.Complaint]
		log      *mock_interfaces.MockIComplaintLog
		notifier *mock_interfaces.MockINotifier
		session  *entities.Session
	}
	newComplaint := func(t *testing.T) fixture {
		ctrl := gomock.NewController(t)
		l := mock_interfaces.NewMockIComplaintLog(ctrl)
		n := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewComplaintUseCase(l, n, ComplaintOptions{SupportEmail: "support@example.com", Clock: fixedClock, NewID: sequentialIDs()})
		return fixture{uc: uc, log: l, notifier: n, session: entities.NewSession("s1", fixedNow)}
	}

	t.Run("cancel leaves no trace", func(t *testing.T) {
		f := newComplaint(t)
		if _, err := f.uc.CreatePreview(f.session, validComplaint); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.log.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)
		f.notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		res, err := f.uc.Resolve(ctx, f.session, "cancel")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusCancelled || !strings.Contains(res.Message, "cancelled") {
			t.Fatalf("unexpected resolution: %+v", res)
		}
	})

	outcomes := []struct {
		name       string
		user, team bool
		want       string
		warnings   int
	}{
		{name: "both sent", user: true, team: true, want: "support team has been notified", warnings: 0},
		{name: "user only", user: true, team: false, want: "could not be notified", warnings: 1},
		{name: "team only", user: false, team: true, want: "could not email you", warnings: 1},
		{name: "none sent", user: false, team: false, want: "registered locally", warnings: 2},
	}
	for _, tc := range outcomes {
		t.Run(tc.name, func(t *testing.T) {
			f := newComplaint(t)
			p, err := f.uc.CreatePreview(f.session, validComplaint)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			gomock.InOrder(
				f.log.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.ComplaintRecord) error {
					if r.ID != p.ID || r.OrderID != "ORD-1" || !r.CreatedAt.Equal(fixedNow) {
						t.Errorf("unexpected record: %+v", r)
					}
					return nil
				}),
				f.notifier.EXPECT().Send(gomock.Any(), "sara@example.com", complaintUserSubject, gomock.Any()).Return(tc.user),
				f.notifier.EXPECT().Send(gomock.Any(), "support@example.com", complaintTeamSubject, gomock.Any()).Return(tc.team),
			)

			res, err := f.uc.Resolve(ctx, f.session, ActionConfirm)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(res.Message, tc.want) || len(res.Warnings) != tc.warnings {
				t.Fatalf("unexpected resolution: %+v", res)
			}
		})
	}

	t.Run("missing order reference", func(t *testing.T) {
		f := newComplaint(t)
		c := validComplaint
		c.OrderID = ""
		if _, err := f.uc.CreatePreview(f.session, c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.log.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.ComplaintRecord) error {
			if r.OrderID != noOrderReference {
				t.Errorf("expected %s, got %q", noOrderReference, r.OrderID)
			}
			return nil
		})
		f.notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(2)

		if _, err := f.uc.Resolve(ctx, f.session, ActionConfirm); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("log failure keeps the complaint pending", func(t *testing.T) {
		f := newComplaint(t)
		if _, err := f.uc.CreatePreview(f.session, validComplaint); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.log.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))

		if _, err := f.uc.Resolve(ctx, f.session, ActionConfirm); err == nil {
			t.Fatalf("expected error")
		}
		if _, ok := f.uc.Pending(f.session); !ok {
			t.Fatalf("complaint must stay pending")
		}
	})

	t.Run("complaint text is required", func(t *testing.T) {
		f := newComplaint(t)
		c := validComplaint
		c.Complaint = "   "
		if _, err := f.uc.CreatePreview(f.session, c); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}
