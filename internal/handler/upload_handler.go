package handler

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const thumbnailWidth = 480

// UploadImage 处理图片上传请求，保存原图并生成缩略图
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "image file is required")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "only image files are allowed")
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		respondStorageError(c, err, "failed to prepare upload directory")
		return
	}

	// 生成唯一文件名
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	fullPath := filepath.Join(a.uploadDir, name)

	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		respondStorageError(c, err, "failed to save file")
		return
	}

	fileURL := fmt.Sprintf("%s/%s", strings.TrimRight(a.uploadURL, "/"), name)
	response := gin.H{"url": fileURL}

	// 缩略图生成失败不阻塞上传，只是没有 thumbnailUrl
	if thumbName, err := writeThumbnail(fullPath, a.uploadDir, name, ext); err == nil {
		response["thumbnailUrl"] = fmt.Sprintf("%s/%s", strings.TrimRight(a.uploadURL, "/"), thumbName)
	}

	c.JSON(http.StatusOK, gin.H{"message": "upload succeeded", "data": response})
}

func writeThumbnail(sourcePath, dir, name, ext string) (string, error) {
	source, err := os.Open(sourcePath)
	if err != nil {
		return "", err
	}
	defer source.Close()

	img, _, err := image.Decode(source)
	if err != nil {
		return "", err
	}

	bounds := img.Bounds()
	if bounds.Dx() <= thumbnailWidth {
		return name, nil
	}

	height := bounds.Dy() * thumbnailWidth / bounds.Dx()
	scaled := image.NewRGBA(image.Rect(0, 0, thumbnailWidth, height))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)

	thumbName := strings.TrimSuffix(name, ext) + "-thumb" + ext
	out, err := os.Create(filepath.Join(dir, thumbName))
	if err != nil {
		return "", err
	}
	defer out.Close()

	switch ext {
	case ".png":
		err = png.Encode(out, scaled)
	default:
		err = jpeg.Encode(out, scaled, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return "", err
	}

	return thumbName, nil
}
