// Package export reads and writes catalog and order spreadsheets for the admin panel.
package export

import (
	"io"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/tealeg/xlsx"
)

// ContentType is the MIME type of the generated workbooks
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const timeLayout = "2006-01-02 15:04:05"

var productHeaders = []string{
	"ID", "Title", "Description", "Price", "Discount", "Published", "Group", "Subcategory", "Images", "CreatedAt",
}

var orderHeaders = []string{
	"ID", "Name", "Phone", "Email", "Governorate", "Address", "Payment",
	"Items", "Coupon", "Subtotal", "Discount", "Total", "CreatedAt",
}

// WriteProducts writes one sheet with a header row and a row per product
func WriteProducts(w io.Writer, products []entity.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return errors.Wrap(err, "failed to create products sheet")
	}

	addHeader(sheet, productHeaders)
	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Title)
		row.AddCell().SetString(p.Description)
		row.AddCell().SetInt(int(p.Price))
		row.AddCell().SetFloat(p.Discount)
		row.AddCell().SetString(strconv.FormatBool(p.Published))
		row.AddCell().SetString(p.Group)
		row.AddCell().SetString(p.Subcategory)
		row.AddCell().SetString(strings.Join(p.Images, ","))
		row.AddCell().SetString(formatTime(p.CreatedAt))
	}

	return errors.Wrap(file.Write(w), "failed to write products workbook")
}

// WriteOrders writes one sheet with a header row and a row per order
func WriteOrders(w io.Writer, orders []entity.Order) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return errors.Wrap(err, "failed to create orders sheet")
	}

	addHeader(sheet, orderHeaders)
	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetString(o.ID)
		row.AddCell().SetString(o.Name)
		row.AddCell().SetString(o.Phone)
		row.AddCell().SetString(o.Email)
		row.AddCell().SetString(o.Governorate)
		row.AddCell().SetString(o.Address)
		row.AddCell().SetString(o.Payment)
		row.AddCell().SetString(describeItems(o.Items))
		coupon := ""
		if o.Coupon != nil {
			coupon = o.Coupon.Code
		}
		row.AddCell().SetString(coupon)
		row.AddCell().SetInt(int(o.Subtotal))
		row.AddCell().SetInt(int(o.Discount))
		row.AddCell().SetInt(int(o.Total))
		row.AddCell().SetString(formatTime(&o.CreatedAt))
	}

	return errors.Wrap(file.Write(w), "failed to write orders workbook")
}

// ImportResult summarises a product sheet read
type ImportResult struct {
	Products []entity.Product
	Skipped  int
}

// ReadProducts parses a workbook in the WriteProducts layout. Rows without a
// title or with an unparsable price are skipped; the ID column is ignored.
func ReadProducts(r io.ReaderAt, size int64) (*ImportResult, error) {
	file, err := xlsx.OpenReaderAt(r, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse workbook")
	}

	if len(file.Sheets) == 0 || file.Sheets[0].MaxRow < 1 {
		return nil, errors.New("workbook is empty or missing header row")
	}

	result := &ImportResult{}
	sheet := file.Sheets[0]
	for i := 1; i < len(sheet.Rows); i++ {
		row := sheet.Rows[i]
		get := func(index int) string {
			if index < len(row.Cells) {
				return strings.TrimSpace(row.Cells[index].String())
			}

			return ""
		}

		title := get(1)
		price, err := strconv.ParseInt(get(3), 10, 64)
		if title == "" || err != nil || price < 0 {
			result.Skipped++

			continue
		}

		discount, _ := strconv.ParseFloat(get(4), 64)
		published, _ := strconv.ParseBool(get(5))

		product := entity.Product{
			Title:       title,
			Description: get(2),
			Price:       price,
			Discount:    discount,
			Published:   published,
			Group:       get(6),
			Subcategory: get(7),
			Images:      splitImages(get(8)),
		}
		if at, err := time.Parse(timeLayout, get(9)); err == nil {
			product.CreatedAt = &at
		}

		result.Products = append(result.Products, product)
	}

	return result, nil
}

func addHeader(sheet *xlsx.Sheet, headers []string) {
	row := sheet.AddRow()
	for _, h := range headers {
		row.AddCell().SetString(h)
	}
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}

	return t.UTC().Format(timeLayout)
}

func describeItems(items []entity.CartItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.Title+" x"+strconv.Itoa(item.Quantity))
	}

	return strings.Join(parts, "; ")
}

func splitImages(s string) []string {
	var images []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			images = append(images, part)
		}
	}

	return images
}

type workbook struct{}

// New returns the xlsx implementation of service.Spreadsheet
func New() service.Spreadsheet {
	return workbook{}
}

func (workbook) WriteProducts(w io.Writer, products []entity.Product) error {
	return WriteProducts(w, products)
}

func (workbook) WriteOrders(w io.Writer, orders []entity.Order) error {
	return WriteOrders(w, orders)
}

func (workbook) ReadProducts(r io.ReaderAt, size int64) ([]entity.Product, int, error) {
	result, err := ReadProducts(r, size)
	if err != nil {
		return nil, 0, err
	}

	return result.Products, result.Skipped, nil
}
