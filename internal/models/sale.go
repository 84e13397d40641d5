package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amounts are served as JSON numbers, matching the store's numeric columns
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Sale represents one retail transaction row
type Sale struct {
	ID string `db:"id" json:"id"`

	CustomerID     string  `db:"customer_id" json:"customer_id"`
	CustomerName   string  `db:"customer_name" json:"customer_name"`
	PhoneNumber    string  `db:"phone_number" json:"phone_number"`
	Gender         *string `db:"gender" json:"gender"`
	Age            *int    `db:"age" json:"age"`
	CustomerRegion *string `db:"customer_region" json:"customer_region"`
	CustomerType   *string `db:"customer_type" json:"customer_type"`

	ProductID       string  `db:"product_id" json:"product_id"`
	ProductName     string  `db:"product_name" json:"product_name"`
	Brand           *string `db:"brand" json:"brand"`
	ProductCategory *string `db:"product_category" json:"product_category"`
	Tags            *string `db:"tags" json:"tags"`

	Quantity           int             `db:"quantity" json:"quantity"`
	PricePerUnit       decimal.Decimal `db:"price_per_unit" json:"price_per_unit"`
	DiscountPercentage decimal.Decimal `db:"discount_percentage" json:"discount_percentage"`
	TotalAmount        decimal.Decimal `db:"total_amount" json:"total_amount"`
	FinalAmount        decimal.Decimal `db:"final_amount" json:"final_amount"`
	Date               string          `db:"date" json:"date"`
	PaymentMethod      *string         `db:"payment_method" json:"payment_method"`
	OrderStatus        *string         `db:"order_status" json:"order_status"`
	DeliveryType       *string         `db:"delivery_type" json:"delivery_type"`

	StoreID       *string `db:"store_id" json:"store_id"`
	StoreLocation *string `db:"store_location" json:"store_location"`
	SalespersonID *string `db:"salesperson_id" json:"salesperson_id"`
	EmployeeName  *string `db:"employee_name" json:"employee_name"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SaleFacets holds the categorical columns of a sale used to build filter options
type SaleFacets struct {
	CustomerRegion  *string `db:"customer_region"`
	Gender          *string `db:"gender"`
	ProductCategory *string `db:"product_category"`
	Tags            *string `db:"tags"`
	PaymentMethod   *string `db:"payment_method"`
}

// FilterOptions lists the distinct values currently present per categorical field
type FilterOptions struct {
	CustomerRegion  []string `json:"customerRegion"`
	Gender          []string `json:"gender"`
	ProductCategory []string `json:"productCategory"`
	Tags            []string `json:"tags"`
	PaymentMethod   []string `json:"paymentMethod"`
}
