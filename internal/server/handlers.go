package server

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/logger"
	"github.com/spigell/resume-screener/internal/pdftext"
	"github.com/spigell/resume-screener/internal/screening"
	"github.com/spigell/resume-screener/internal/utils"
)

const (
	channelHTTP       = "http"
	jobDescriptionKey = "job_description"
	previewLength     = 200
)

// resumeFileKeys are the form keys a resume upload is accepted from, in order.
var resumeFileKeys = []string{"resume", "file", "upload"}

const testPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Resume Screening</title></head>
<body>
<h2>Resume Screening Test Page ✅</h2>
<form action="/screen" method="POST" enctype="multipart/form-data">
  <label>Resume PDF:</label><br>
  <input type="file" name="resume" accept=".pdf" required><br><br>

  <label>Job Description:</label><br>
  <textarea name="job_description" rows="10" cols="70" required></textarea><br><br>

  <button type="submit">Screen Resume</button>
</form>
</body>
</html>
`

// ScreenResponse is the body of a successful POST /screen.
type ScreenResponse struct {
	ResumeFilename string            `json:"resume_filename"`
	Result         *screening.Result `json:"result"`
}

func (s *Server) handleHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Resume Screening Expert System API running",
		"endpoints": gin.H{
			"GET /":        "Health check",
			"GET /test":    "Browser upload page",
			"POST /screen": "Upload resume PDF + job_description text",
		},
	})
}

func (s *Server) handleTestPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(testPage))
}

func (s *Server) handleScreen(c *gin.Context) {
	limit := s.cfg.maxUploadBytes()
	if c.Request.ContentLength > limit {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Upload is too large"})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Upload is too large"})
			return
		}
		s.logger.Debug("parsing multipart form", zap.Error(err))
		form = &multipart.Form{}
	}

	fileHeader := findResumeFile(form)
	if fileHeader == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":              "Resume PDF not provided",
			"hint":               "Send file with key name 'resume'",
			"received_file_keys": fileKeys(form),
		})
		return
	}

	log := logger.WithFields(
		logger.WithScreening(s.logger, channelHTTP, fileHeader.Filename),
		zap.String(logger.FieldRequestID, c.GetString(requestIDKey)),
	)

	jobDescription := ""
	if values := form.Value[jobDescriptionKey]; len(values) > 0 {
		jobDescription = strings.TrimSpace(values[0])
	}
	if jobDescription == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Job description is empty"})
		return
	}

	data, err := readUpload(fileHeader)
	if err != nil {
		log.Warn("reading uploaded resume", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}

	resumeText, err := pdftext.ExtractBytes(s.extractor, data)
	if err != nil || strings.TrimSpace(resumeText) == "" {
		log.Warn("extracting resume text", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not extract text from PDF"})
		return
	}

	log.Debug("resume text extracted", zap.String("preview", utils.TruncateForLog(resumeText, previewLength)))

	result := s.scorer.Score(resumeText, jobDescription)

	log.Info("resume screened",
		zap.Float64("total_score", result.TotalScore),
		zap.String("decision", string(result.Decision)),
	)

	c.JSON(http.StatusOK, ScreenResponse{
		ResumeFilename: fileHeader.Filename,
		Result:         result,
	})
}

func findResumeFile(form *multipart.Form) *multipart.FileHeader {
	for _, key := range resumeFileKeys {
		if files := form.File[key]; len(files) > 0 {
			return files[0]
		}
	}
	return nil
}

func fileKeys(form *multipart.Form) []string {
	keys := make([]string, 0, len(form.File))
	for key := range form.File {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
