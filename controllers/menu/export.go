package menuControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /menus/export (admin)
//
// Streams the whole catalog as a spreadsheet download.
func ExportMenusToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		var menus []struct {
			ID                           uint
			Name, Slug, Category, Type   string
			Price                        float64
			DescriptionEN, DescriptionTH string
			Available                    bool
			ServingSize                  string
		}
		if err := db.Table("menus").Order("id").Find(&menus).Error; err != nil {
			_ = c.Error(err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Menus")
		if err != nil {
			_ = c.Error(err)
			return
		}

		headers := []string{
			"ID", "Name", "Slug", "Category", "Type", "Price",
			"DescriptionEN", "DescriptionTH", "Available", "ServingSize",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, m := range menus {
			row := sheet.AddRow()
			row.AddCell().SetValue(m.ID)
			row.AddCell().SetValue(m.Name)
			row.AddCell().SetValue(m.Slug)
			row.AddCell().SetValue(m.Category)
			row.AddCell().SetValue(m.Type)
			row.AddCell().SetValue(m.Price)
			row.AddCell().SetValue(m.DescriptionEN)
			row.AddCell().SetValue(m.DescriptionTH)
			row.AddCell().SetValue(boolLabel(m.Available))
			row.AddCell().SetValue(m.ServingSize)
		}

		c.Header("Content-Disposition", "attachment; filename=menus.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")

		if err := file.Write(c.Writer); err != nil {
			_ = c.Error(err)
			return
		}
		c.Status(http.StatusOK)
	}
}

func boolLabel(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
