package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBuildPagination(t *testing.T) {
	casos := []struct {
		nombre string
		total  int64
		limit  int
		pages  int
	}{
		{"exacto", 20, 10, 2},
		{"con resto", 15, 10, 2},
		{"vacio", 0, 10, 0},
		{"una pagina", 3, 10, 1},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			p := BuildPagination(tc.total, Paging{Page: 1, Limit: tc.limit})
			if p.Pages != tc.pages {
				t.Errorf("pages = %d, esperado %d", p.Pages, tc.pages)
			}
			if p.Total != tc.total {
				t.Errorf("total = %d, esperado %d", p.Total, tc.total)
			}
		})
	}
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 10, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	casos := []struct {
		url    string
		page   int
		limit  int
		offset int
	}{
		{"/x", 1, 10, 0},
		{"/x?page=3&limit=25", 3, 25, 50},
		{"/x?page=0&limit=-5", 1, 10, 0},
		{"/x?limit=9999", 1, 100, 0},
	}
	for _, tc := range casos {
		resp, err := app.Test(httptest.NewRequest("GET", tc.url, nil))
		if err != nil {
			t.Fatalf("%s: %v", tc.url, err)
		}
		resp.Body.Close()
		if got.Page != tc.page || got.Limit != tc.limit || got.Offset != tc.offset {
			t.Errorf("%s: got %+v, esperado page=%d limit=%d offset=%d", tc.url, got, tc.page, tc.limit, tc.offset)
		}
	}
}
