package export

import (
	"time"

	"github.com/VasBayern/mobile-project/internal/domain/model"
)

const timeLayout = "02/01/2006 15:04:05"

func stamp(t time.Time) string { return t.Format(timeLayout) }

func CategorySheet(items []model.Category) Sheet {
	s := Sheet{
		Name:    "Categories",
		Headers: []string{"ID", "Name", "Slug", "Image", "Sort No", "Home", "Created At"},
	}
	for _, c := range items {
		s.Rows = append(s.Rows, []any{c.ID, c.Name, c.Slug, c.Image, c.SortNo, c.Home, stamp(c.CreatedAt)})
	}
	return s
}

func BrandSheet(items []model.Brand) Sheet {
	s := Sheet{
		Name:    "Brands",
		Headers: []string{"ID", "Name", "Slug", "Image", "Sort No", "Home", "Created At"},
	}
	for _, b := range items {
		s.Rows = append(s.Rows, []any{b.ID, b.Name, b.Slug, b.Image, b.SortNo, b.Home, stamp(b.CreatedAt)})
	}
	return s
}

func ColorSheet(items []model.Color) Sheet {
	s := Sheet{
		Name:    "Colors",
		Headers: []string{"ID", "Name", "Code", "Created At"},
	}
	for _, c := range items {
		s.Rows = append(s.Rows, []any{c.ID, c.Name, c.Code, stamp(c.CreatedAt)})
	}
	return s
}

func RamSheet(items []model.Ram) Sheet {
	s := Sheet{
		Name:    "Rams",
		Headers: []string{"ID", "Capacity (GB)", "Created At"},
	}
	for _, r := range items {
		s.Rows = append(s.Rows, []any{r.ID, r.Name, stamp(r.CreatedAt)})
	}
	return s
}

func RomSheet(items []model.Rom) Sheet {
	s := Sheet{
		Name:    "Roms",
		Headers: []string{"ID", "Capacity (GB)", "Created At"},
	}
	for _, r := range items {
		s.Rows = append(s.Rows, []any{r.ID, r.Name, stamp(r.CreatedAt)})
	}
	return s
}

func ProductSheet(items []model.Product) Sheet {
	s := Sheet{
		Name: "Products",
		Headers: []string{
			"ID", "Name", "Slug", "Category", "Brand",
			"Price Core", "Price", "Sort No", "Home", "New", "Created At",
		},
	}
	for _, p := range items {
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		brand := ""
		if p.Brand != nil {
			brand = p.Brand.Name
		}
		s.Rows = append(s.Rows, []any{
			p.ID, p.Name, p.Slug, category, brand,
			p.PriceCore.StringFixed(2), p.Price.StringFixed(2),
			p.SortNo, p.Home, p.New, stamp(p.CreatedAt),
		})
	}
	return s
}
