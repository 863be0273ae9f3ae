package service

import (
	"io"

	"storefront/internal/domain/entity"
)

// Spreadsheet converts catalog and order data to and from workbooks.
type Spreadsheet interface {
	WriteProducts(w io.Writer, products []entity.Product) error
	WriteOrders(w io.Writer, orders []entity.Order) error

	// ReadProducts returns the parsed products and how many rows were skipped.
	ReadProducts(r io.ReaderAt, size int64) ([]entity.Product, int, error)
}
