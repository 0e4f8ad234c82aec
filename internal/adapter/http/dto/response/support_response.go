package response

import (
	"retail_assistant/internal/domain/catalog"
	"retail_assistant/internal/domain/entities"
	"retail_assistant/internal/usecase"
)

type ProductResponse struct {
	Category string   `json:"category"`
	Brand    string   `json:"brand"`
	Model    string   `json:"model"`
	Colors   []string `json:"colors"`
	Price    string   `json:"price"`
}

type BrowseResponse struct {
	Products []ProductResponse `json:"products"`
	Summary  string            `json:"summary"`
}

type CountryResponse struct {
	Country string `json:"country"`
	Rate    string `json:"rate"`
}

type ContactInfoResponse struct {
	Info string `json:"info"`
}

type RequestPreviewResponse struct {
	ID                   string `json:"id"`
	Summary              string `json:"summary"`
	RequiresConfirmation bool   `json:"requires_confirmation"`
}

type RequestResolutionResponse struct {
	ID       string   `json:"id"`
	Status   string   `json:"status"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

type CompanyInfoResponse struct {
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer"`
	Found    bool   `json:"found"`
}

type LeadershipResponse struct {
	Team string `json:"team"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		Category: p.Category,
		Brand:    p.Brand,
		Model:    p.Model,
		Colors:   p.Colors,
		Price:    p.Price.StringFixed(2),
	}
}

func FromBrowseResult(r usecase.BrowseResult) BrowseResponse {
	products := make([]ProductResponse, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, FromProduct(p))
	}
	return BrowseResponse{Products: products, Summary: r.Summary}
}

func FromCountries(rates []catalog.ShippingRate) []CountryResponse {
	out := make([]CountryResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, CountryResponse{Country: r.Country, Rate: r.Rate.StringFixed(2)})
	}
	return out
}

func FromRequestPreview(p usecase.RequestPreview) RequestPreviewResponse {
	return RequestPreviewResponse{ID: p.ID, Summary: p.Summary, RequiresConfirmation: p.RequiresConfirmation}
}

func FromRequestResolution(r usecase.RequestResolution) RequestResolutionResponse {
	return RequestResolutionResponse{ID: r.ID, Status: string(r.Status), Message: r.Message, Warnings: r.Warnings}
}

func FromCompanyAnswer(a usecase.CompanyAnswer) CompanyInfoResponse {
	return CompanyInfoResponse{Question: a.Question, Answer: a.Answer, Found: a.Found}
}
