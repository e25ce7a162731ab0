package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"railway-planner/internal/presenter"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb/geojson"
)

// view is one result in every supported output format.
type view struct {
	filename string
	payload  any
	table    presenter.Table
	overlay  *geojson.FeatureCollection
}

// render writes v in the format named by the "format" query parameter:
// json (default), geojson, csv or yaml.
func render(c *gin.Context, v view) {
	switch format := c.DefaultQuery("format", "json"); format {
	case "json":
		c.JSON(http.StatusOK, v.payload)
	case "geojson":
		c.Header("Content-Type", "application/geo+json")
		c.JSON(http.StatusOK, v.overlay)
	case "csv":
		var buf bytes.Buffer
		if err := presenter.WriteCSV(&buf, v.table); err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, v.filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	case "yaml":
		var buf bytes.Buffer
		if err := presenter.WriteYAML(&buf, v.payload); err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", buf.Bytes())
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported format '%s'", format)})
	}
}
