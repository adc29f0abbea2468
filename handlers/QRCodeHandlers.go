package handlers

import (
	"database/sql"
	"encoding/json"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// addLabel adds text to an image at the specified position
func addLabel(img *image.RGBA, x, y int, label string, fontSize float64) {
	col := color.RGBA{0, 0, 0, 255}

	// inconsolata is larger and more readable than the basicfont face
	face := inconsolata.Regular8x16
	if fontSize > 16 {
		face = inconsolata.Bold8x16
	}

	point := fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  point,
	}
	d.DrawString(label)
}

// addLabelBold adds bold text for field labels
func addLabelBold(img *image.RGBA, x, y int, label string) {
	col := color.RGBA{30, 30, 30, 255}
	face := inconsolata.Bold8x16

	point := fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  point,
	}
	d.DrawString(label)
}

// GenerateZoneQRCodeJPEG godoc
// @Summary      Generate zone signage QR code as JPEG
// @Description  Render a printable QR label for a zone location so site crews can report progress against it
// @Tags         qr
// @Param        id   path      int  true  "Location ID"
// @Success      200  {file}    file  "JPEG image"
// @Failure      400  {object}  object
// @Router       /api/generate-zone-qr/{id} [get]
func GenerateZoneQRCodeJPEG(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		locationParam := c.Param("id")
		if locationParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Location ID is required"})
			return
		}

		id, err := strconv.Atoi(locationParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
			return
		}

		// Fetch the zone with its parent chain and project name in one query
		var projectID int
		var projectName sql.NullString
		var zoneName string
		var locationType string
		var phase sql.NullString
		var parentName sql.NullString

		err = db.QueryRow(`
			SELECT
				l.project_id,
				COALESCE(p.name, 'Unknown Project') AS project_name,
				l.name,
				l.location_type,
				l.phase,
				parent.name AS parent_name
			FROM location l
			LEFT JOIN project p ON l.project_id = p.project_id
			LEFT JOIN location parent ON l.parent_id = parent.id
			WHERE l.id = $1
		`, id).Scan(&projectID, &projectName, &zoneName, &locationType, &phase, &parentName)

		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
				return
			}
			log.Printf("[QR] error fetching location %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch location details"})
			return
		}

		projectNameStr := "Unknown Project"
		if projectName.Valid {
			projectNameStr = projectName.String
		}
		parentNameStr := "N/A"
		if parentName.Valid {
			parentNameStr = parentName.String
		}
		phaseStr := "N/A"
		if phase.Valid && phase.String != "" {
			phaseStr = phase.String
		}

		qrData := struct {
			LocationID int    `json:"location_id"`
			ProjectID  int    `json:"project_id"`
			Type       string `json:"type"`
			IsValid    bool   `json:"is_valid"`
		}{
			LocationID: id,
			ProjectID:  projectID,
			Type:       locationType,
			IsValid:    true,
		}

		jsonData, err := json.Marshal(qrData)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to marshal location data"})
			return
		}

		qr, err := qrcode.New(string(jsonData), qrcode.Medium)
		if err != nil {
			c.String(http.StatusInternalServerError, "QR code generation failed")
			return
		}

		qrImg := qr.Image(512)

		// Combined image: QR on top, text labels below
		qrSize := qrImg.Bounds().Dy()
		padding := 30
		lineHeight := 28
		textAreaHeight := 4*lineHeight + padding
		totalHeight := qrSize + padding + textAreaHeight

		combinedImg := image.NewRGBA(image.Rect(0, 0, qrSize, totalHeight))
		draw.Draw(combinedImg, combinedImg.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

		qrRect := image.Rect(0, 0, qrSize, qrSize)
		draw.Draw(combinedImg, qrRect, qrImg, image.Point{}, draw.Src)

		// Separator line between QR code and text
		separatorY := qrSize + padding/2
		for x := 0; x < qrSize; x++ {
			combinedImg.Set(x, separatorY, color.RGBA{200, 200, 200, 255})
		}

		startY := qrSize + padding + lineHeight
		xPos := 20

		addLabelBold(combinedImg, xPos, startY, "Zone:")
		addLabel(combinedImg, xPos+120, startY, zoneName, 16)

		addLabelBold(combinedImg, xPos, startY+lineHeight, "Location:")
		addLabel(combinedImg, xPos+120, startY+lineHeight, parentNameStr, 16)

		addLabelBold(combinedImg, xPos, startY+2*lineHeight, "Phase:")
		addLabel(combinedImg, xPos+120, startY+2*lineHeight, phaseStr, 16)

		addLabelBold(combinedImg, xPos, startY+3*lineHeight, "Project:")
		addLabel(combinedImg, xPos+120, startY+3*lineHeight, projectNameStr, 16)

		c.Header("Content-Type", "image/jpeg")
		c.Header("Content-Disposition", "inline; filename=zone_"+locationParam+".jpg")

		if err := jpeg.Encode(c.Writer, combinedImg, &jpeg.Options{Quality: 90}); err != nil {
			log.Printf("[QR] error encoding jpeg for location %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode image"})
			return
		}
	}
}
