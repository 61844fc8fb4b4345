package models

import (
	"strconv"
	"time"
)

// Sale is a row of the Sales sheet. ProductID is not checked against the
// generated products.
type Sale struct {
	SaleID    int       `json:"sale_id" csv:"sale_id"`
	ProductID int       `json:"product_id" csv:"product_id"`
	Quantity  int       `json:"quantity" csv:"quantity"`
	SaleDate  time.Time `json:"sale_date" csv:"sale_date"`
	Customer  string    `json:"customer" csv:"customer"`
}

var saleColumns = []string{"sale_id", "product_id", "quantity", "sale_date", "customer"}

// NewSale builds a sale. The customer name is derived from the row position,
// which is the same as the sale id.
func NewSale(saleID, productID, quantity int, soldAt time.Time) Sale {
	return Sale{
		SaleID:    saleID,
		ProductID: productID,
		Quantity:  quantity,
		SaleDate:  soldAt,
		Customer:  "Customer_" + strconv.Itoa(saleID),
	}
}

// Columns implements Record.
func (Sale) Columns() []string {
	return append([]string(nil), saleColumns...)
}

// Values implements Record.
func (s Sale) Values() []interface{} {
	return []interface{}{s.SaleID, s.ProductID, s.Quantity, s.SaleDate, s.Customer}
}
