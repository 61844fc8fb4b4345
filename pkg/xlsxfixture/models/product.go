package models

import (
	"strconv"
	"time"
)

// Categories is the closed set of product categories.
var Categories = []string{"Electronics", "Clothing", "Books", "Home"}

// Product is a row of the Products sheet.
type Product struct {
	ID          int       `json:"id" csv:"id"`
	Name        string    `json:"name" csv:"name"`
	Category    string    `json:"category" csv:"category"`
	Price       float64   `json:"price" csv:"price"`
	InStock     bool      `json:"in_stock" csv:"in_stock"`
	CreatedDate time.Time `json:"created_date" csv:"created_date"`
}

var productColumns = []string{"id", "name", "category", "price", "in_stock", "created_date"}

// NewProduct builds a product whose name is derived from its id.
func NewProduct(id int, category string, price float64, inStock bool, created time.Time) Product {
	return Product{
		ID:          id,
		Name:        "Product_" + strconv.Itoa(id),
		Category:    category,
		Price:       price,
		InStock:     inStock,
		CreatedDate: created,
	}
}

// Columns implements Record.
func (Product) Columns() []string {
	return append([]string(nil), productColumns...)
}

// Values implements Record.
func (p Product) Values() []interface{} {
	return []interface{}{p.ID, p.Name, p.Category, p.Price, p.InStock, p.CreatedDate}
}
