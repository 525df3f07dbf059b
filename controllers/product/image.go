package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

var unsafeFilenameChars = regexp.MustCompile(`[^\w\d\-_\.]`)

// UploadProductImage handles a single file upload and returns the stored
// filename. Files are served back under the public /uploads prefix.
// POST /products/image
func UploadProductImage(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		cleanName := unsafeFilenameChars.ReplaceAllString(file.Filename, "_")
		filename := fmt.Sprintf("%d_%s", time.Now().Unix(), cleanName)

		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to create upload folder: %v", err),
			})
			return
		}

		savePath := filepath.Join(uploadDir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to save file: %v", err),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"fileName": filename})
	}
}
