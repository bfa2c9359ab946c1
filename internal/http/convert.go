package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/s4daharu/novel-apps-sub001/internal/archive"
	"github.com/s4daharu/novel-apps-sub001/internal/audit"
	"github.com/s4daharu/novel-apps-sub001/internal/backup"
	"github.com/s4daharu/novel-apps-sub001/internal/services"
)

// BackupConvertController handles ZIP-to-backup conversion uploads.
type BackupConvertController struct {
	service        *services.ConversionService
	auditor        *audit.Auditor
	maxArchiveSize int64
}

func NewBackupConvertController(service *services.ConversionService, auditor *audit.Auditor, maxArchiveSize int64) *BackupConvertController {
	return &BackupConvertController{
		service:        service,
		auditor:        auditor,
		maxArchiveSize: maxArchiveSize,
	}
}

// convertParams is the audited, non-binary portion of a conversion request.
type convertParams struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	UniqueCode     string `json:"unique_code"`
	ChapterPattern string `json:"chapter_pattern"`
	StartNumber    int    `json:"start_number"`
	ExtraChapters  int    `json:"extra_chapters"`
	ArchiveName    string `json:"archive_name"`
	ArchiveBytes   int64  `json:"archive_bytes"`
}

// Convert handles POST /api/backup/from-zip. The archive is uploaded as
// the "zip_file" multipart field alongside the project form fields; the
// response streams the serialized backup as an attachment with the
// suggested filename.
func (controller *BackupConvertController) Convert(c *gin.Context) {
	file, header, err := c.Request.FormFile("zip_file")
	if err != nil {
		respondBadRequest(c, "chapter archive not provided")
		return
	}
	defer file.Close()

	if header.Size > controller.maxArchiveSize {
		respondBadRequest(c, fmt.Sprintf("archive too large (max %d MB)", controller.maxArchiveSize/(1024*1024)))
		return
	}

	title := c.PostForm("title")
	if title == "" {
		respondBadRequest(c, backup.ErrMissingTitle.Error())
		return
	}

	startNumber, ok := parseFormInt(c, "start_number", 1)
	if !ok {
		return
	}
	extraChapters, ok := parseFormInt(c, "extra_chapters", 0)
	if !ok {
		return
	}
	if startNumber < 1 {
		respondBadRequest(c, "start_number must be at least 1")
		return
	}
	if extraChapters < 0 {
		respondBadRequest(c, "extra_chapters must not be negative")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, controller.maxArchiveSize+1))
	if err != nil {
		respondInternalError(c, err, "read upload")
		return
	}

	params := convertParams{
		Title:          title,
		Description:    c.PostForm("description"),
		UniqueCode:     c.PostForm("unique_code"),
		ChapterPattern: c.PostForm("chapter_pattern"),
		StartNumber:    startNumber,
		ExtraChapters:  extraChapters,
		ArchiveName:    header.Filename,
		ArchiveBytes:   header.Size,
	}

	// Record the request parameters, never the archive bytes
	if controller.auditor != nil {
		if _, err := controller.auditor.Save("backup_from_zip", params); err != nil {
			c.Writer.Header().Set("X-Audit-Warning", "Failed to save audit log")
		}
	}

	result, err := controller.service.ZipToBackup(c.Request.Context(), services.ConversionRequest{
		Archive:        data,
		Title:          params.Title,
		Description:    params.Description,
		UniqueCode:     params.UniqueCode,
		ChapterPattern: params.ChapterPattern,
		StartNumber:    params.StartNumber,
		ExtraChapters:  params.ExtraChapters,
	})
	if err != nil {
		switch {
		case errors.Is(err, archive.ErrArchiveRead),
			errors.Is(err, backup.ErrNoChapters),
			errors.Is(err, backup.ErrMissingTitle):
			respondBadRequest(c, err.Error())
		default:
			respondInternalError(c, err, "zip to backup")
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Header("X-Chapter-Count", strconv.Itoa(result.ChapterCount))
	c.Header("X-Word-Count", strconv.Itoa(result.WordCount))
	c.Data(http.StatusOK, "application/json", result.Data)
}
