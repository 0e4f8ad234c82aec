package tools

import (
	"context"

	"retail_assistant/internal/adapter/http/dto/request"
	"retail_assistant/internal/adapter/http/dto/response"
	"retail_assistant/internal/domain/entities"
	"retail_assistant/internal/usecase"
)

// Deps are the usecases the assistant tools call into.
type Deps struct {
	Orders     usecase.IOrderUseCase
	Contact    usecase.IContactUseCase
	Complaints usecase.IComplaintUseCase
	Support    usecase.ISupportUseCase
}

func str(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func integer(description string) map[string]any {
	return map[string]any{"type": "integer", "minimum": 1, "description": description}
}

func object(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{"type": "object", "properties": properties}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

var itemSchema = object(map[string]any{
	"category": str("Product category, e.g. smartphones, laptops, headphones, smartwatches, smart_home, accessories"),
	"brand":    str("Brand name; may be omitted for accessories"),
	"model":    str("Model name as listed in the catalog"),
	"color":    str("Preferred color, optional"),
	"quantity": integer("Number of units, defaults to 1"),
}, "category", "model")

var actionSchema = object(map[string]any{
	"action": map[string]any{"type": "string", "enum": []string{usecase.ActionConfirm, usecase.ActionCancel}},
}, "action")

// AssistantTools returns the retail assistant's tool set.
func AssistantTools(d Deps) []Tool {
	return []Tool{
		{
			Name:        "place_order",
			Description: "Start an order or add items to the pending one. Returns a preview that must be confirmed with confirm_order.",
			Parameters: object(map[string]any{
				"customer_name":  str("Customer full name"),
				"customer_email": str("Customer email address"),
				"country":        str("Shipping country"),
				"items":          map[string]any{"type": "array", "items": itemSchema, "minItems": 1},
			}, "customer_name", "customer_email", "country", "items"),
			Handler: func(_ context.Context, s *entities.Session, args map[string]any) (any, error) {
				var req request.PlaceOrderRequest
				if err := decodeArgs(args, &req); err != nil {
					return nil, err
				}
				p, err := d.Orders.StartOrMerge(s, req.Customer(), req.Country, req.ItemsToUseCase())
				if err != nil {
					return nil, err
				}
				return response.FromOrderPreview(p), nil
			},
		},
		{
			Name:        "add_item_to_order",
			Description: "Add one item to the pending order.",
			Parameters:  itemSchema,
			Handler: func(_ context.Context, s *entities.Session, args map[string]any) (any, error) {
				var req request.OrderItemRequest
				if err := decodeArgs(args, &req); err != nil {
					return nil, err
				}
				p, err := d.Orders.AddItem(s, req.ToUseCase())
				if err != nil {
					return nil, err
				}
				return response.FromOrderPreview(p), nil
			},
		},
		{
			Name:        "accept_upsell",
			Description: "Add one of the accessories suggested in the last order preview.",
			Parameters: object(map[string]any{
				"product":  str("Name of the suggested accessory"),
				"quantity": integer("Number of units, defaults to 1"),
			}, "product"),
			Handler: func(_ context.Context, s *entities.Session, args map[string]any) (any, error) {
				var req request.AcceptUpsellRequest
				if err := decodeArgs(args, &req); err != nil {
					return nil, err
				}
				p, err := d.Orders.AcceptUpsell(s, req.Product, req.ResolveQuantity())
				if err != nil {
					return nil, err
				}
				return response.FromOrderPreview(p), nil
			},
		},
		{
			Name:        "confirm_order",
			Description: "Confirm the pending order after the customer explicitly agreed to the preview.",
			Parameters:  object(map[string]any{}),
			Handler: func(ctx context.Context, s *entities.Session, _ map[string]any) (any, error) {
				c, err := d.Orders.Confirm(ctx, s)
				if err != nil {
					return nil, err
				}
				return response.FromOrderConfirmation(c), nil
			},
		},
		{
			Name:        "cancel_order",
			Description: "Discard the pending order.",
			Parameters:  object(map[string]any{}),
			Handler: func(_ context.Context, s *entities.Session, _ map[string]any) (any, error) {
				o, err := d.Orders.Cancel(s)
				if err != nil {
					return nil, err
				}
				return response.MessageResponse{Message: "Order " + o.ID + " has been cancelled."}, nil
			},
		},
		{
			Name:        "browse_products",
			Description: "List catalog products, optionally filtered by category, brand, color and maximum price.",
			Parameters: object(map[string]any{
				"category":  str("Product category"),
				"brand":     str("Brand name"),
				"color":     str("Color"),
				"max_price": map[string]any{"type": "number", "description": "Maximum unit price"},
			}),
			Handler: func(_ context.Context, _ *entities.Session, args map[string]any) (any, error) {
				var req request.BrowseRequest
				if err := decodeArgs(args, &req); err != nil {
					return nil, err
				}
				return response.FromBrowseResult(d.Support.Browse(req.ToFilter())), nil
			},
		},
		{
			Name:        "track_order_status",
			Description: "Look up a confirmed order by its id.",
			Parameters:  object(map[string]any{"order_id": str("Order id, e.g. ORD-1A2B")}, "order_id"),
			Handler: func(ctx context.Context, _ *entities.Session, args map[string]any) (any, error) {
				var req request.TrackOrderRequest
				if err := decodeArgs(args, &req); err != nil {
					return nil, err
				}
				t, err := d.Support.TrackOrder(ctx, req.OrderID)
				if err != nil {
					return nil, err
				}
				return response.FromOrderTracking(t), nil
			},
		},
		{
			Name:        "get_contact_info",
			Description: "Company address, phone, email or office hours.",
			Parameters: object(map[string]any{
				"field": map[string]any{"type": "string", "enum": []string{"address", "phone", "email", "office_hours", "all"}},
			}),
			Handler: func(_ context.Context, _ *entities.Session, args map[string]any) (any, error) {
				var req request.ContactInfoRequest
				if err := decodeArgs(args, &req); err != nil {
					return nil, err
				}
				info, err := d.Support.ContactInfo(req.Field)
				if err != nil {
					return nil, err
				}
				return response.ContactInfoResponse{Info: info}, nil
			},
		},
		{
			Name:        "get_company_info",
			Description: "Answer a general question about the company: shipping, delivery, returns, warranty, payment or mission.",
			Parameters:  object(map[string]any{"query": str("The customer's question or its key words")}, "query"),
			Handler: func(_ context.Context, _ *entities.Session, args map[string]any) (any, error) {
				var req request.CompanyInfoRequest
				if err := decodeArgs(args, &req); err != nil {
					return nil, err
				}
				answer, err := d.Support.CompanyInfo(req.Query)
				if err != nil {
					return nil, err
				}
				return response.FromCompanyAnswer(answer), nil
			},
		},
		{
			Name:        "get_leadership_team",
			Description: "Who runs the company: the leadership team and their roles.",
			Parameters:  object(map[string]any{}),
			Handler: func(_ context.Context, _ *entities.Session, _ map[string]any) (any, error) {
				return response.LeadershipResponse{Team: d.Support.LeadershipTeam()}, nil
			},
		},
		{
			Name:        "contact_company",
			Description: "Prepare a message to the company. Returns a preview that must be resolved with confirm_contact_request.",
			Parameters: object(map[string]any{
				"name":    str("Customer name"),
				"email":   str("Customer email"),
				"phone":   str("Phone number, optional"),
				"subject": str("Subject"),
				"message": str("Message body"),
			}, "name", "email", "subject", "message"),
			Handler: func(_ context.Context, s *entities.Session, args map[string]any) (any, error) {
				var req request.ContactRequest
				if err := decodeArgs(args, &req); err != nil {
					return nil, err
				}
				p, err := d.Contact.CreatePreview(s, req.ToEntity())
				if err != nil {
					return nil, err
				}
				return response.FromRequestPreview(p), nil
			},
		},
		{
			Name:        "confirm_contact_request",
			Description: "Send or discard the pending contact request.",
			Parameters:  actionSchema,
			Handler: func(ctx context.Context, s *entities.Session, args map[string]any) (any, error) {
				var req request.ResolveRequest
				if err := decodeArgs(args, &req); err != nil {
					return nil, err
				}
				r, err := d.Contact.Resolve(ctx, s, req.Action)
				if err != nil {
					return nil, err
				}
				return response.FromRequestResolution(r), nil
			},
		},
		{
			Name:        "register_complaint",
			Description: "Prepare a complaint. Returns a preview that must be resolved with confirm_complaint.",
			Parameters: object(map[string]any{
				"name":      str("Customer name"),
				"email":     str("Customer email"),
				"order_id":  str("Related order id, optional"),
				"complaint": str("Complaint text"),
			}, "name", "email", "complaint"),
			Handler: func(_ context.Context, s *entities.Session, args map[string]any) (any, error) {
				var req request.ComplaintRequest
				if err := decodeArgs(args, &req); err != nil {
					return nil, err
				}
				p, err := d.Complaints.CreatePreview(s, req.ToEntity())
				if err != nil {
					return nil, err
				}
				return response.FromRequestPreview(p), nil
			},
		},
		{
			Name:        "confirm_complaint",
			Description: "Register or discard the pending complaint.",
			Parameters:  actionSchema,
			Handler: func(ctx context.Context, s *entities.Session, args map[string]any) (any, error) {
				var req request.ResolveRequest
				if err := decodeArgs(args, &req); err != nil {
					return nil, err
				}
				r, err := d.Complaints.Resolve(ctx, s, req.Action)
				if err != nil {
					return nil, err
				}
				return response.FromRequestResolution(r), nil
			},
		},
	}
}
