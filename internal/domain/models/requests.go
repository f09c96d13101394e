package models

// Requests for the analysis HTTP endpoints. Defined in domain for consistency and reuse.

type OutliersRequest struct {
	Symbol string  `query:"symbol" json:"symbol" validate:"required"`
	Window int     `query:"window" json:"window" default:"20" validate:"gte=1,lte=10000"`
	Sigma  float64 `query:"sigma" json:"sigma" default:"1.5" validate:"gt=0"`
	Method string  `query:"method" json:"method" default:"moving_average" validate:"required"`
	From   string  `query:"from" json:"from"`
	To     string  `query:"to" json:"to"`
}

type SeriesRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	From   string `query:"from" json:"from"`
	To     string `query:"to" json:"to"`
}
