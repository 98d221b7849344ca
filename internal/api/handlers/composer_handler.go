package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postflow-composer/internal/composer"
	"github.com/maheshrc27/postflow-composer/internal/service"
	"github.com/maheshrc27/postflow-composer/internal/transfer"
)

// Sessions hands out the composer of a user.
type Sessions interface {
	Get(userID int64) *composer.Composer
}

type ComposerHandler struct {
	sessions      Sessions
	library       service.LibraryService
	validate      *validator.Validate
	maxUploadSize int64
}

func NewComposerHandler(sessions Sessions, library service.LibraryService, maxUploadSize int64) *ComposerHandler {
	return &ComposerHandler{
		sessions:      sessions,
		library:       library,
		validate:      validator.New(),
		maxUploadSize: maxUploadSize,
	}
}

func (h *ComposerHandler) composer(c *fiber.Ctx) *composer.Composer {
	return h.sessions.Get(GetUserID(c))
}

// Load fetches profiles and accounts and selects the first profile.
func (h *ComposerHandler) Load(c *fiber.Ctx) error {
	comp := h.composer(c)
	if err := comp.Load(c.UserContext()); err != nil {
		return composerError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comp.State())
}

func (h *ComposerHandler) GetState(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.composer(c).State())
}

func (h *ComposerHandler) SelectProfile(c *fiber.Ctx) error {
	var req transfer.SelectProfileRequest
	if body := bindBody(c, h.validate, &req); body != nil {
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	comp := h.composer(c)
	comp.SelectProfile(req.ProfileID)
	return c.Status(fiber.StatusOK).JSON(comp.State())
}

func (h *ComposerHandler) ToggleAccount(c *fiber.Ctx) error {
	var req transfer.ToggleAccountRequest
	if body := bindBody(c, h.validate, &req); body != nil {
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	comp := h.composer(c)
	comp.ToggleAccount(req.AccountID)
	return c.Status(fiber.StatusOK).JSON(comp.State())
}

func (h *ComposerHandler) SetContent(c *fiber.Ctx) error {
	var req transfer.ContentRequest
	if body := bindBody(c, h.validate, &req); body != nil {
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	comp := h.composer(c)
	comp.SetContent(req.Content)
	return c.Status(fiber.StatusOK).JSON(comp.State())
}

func (h *ComposerHandler) SetSchedule(c *fiber.Ctx) error {
	var req transfer.ScheduleRequest
	if body := bindBody(c, h.validate, &req); body != nil {
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	comp := h.composer(c)
	if req.Date == "" && req.Time == "" {
		comp.ClearSchedule()
		return c.Status(fiber.StatusOK).JSON(comp.State())
	}
	if err := comp.SetSchedule(composer.Schedule{Date: req.Date, Time: req.Time}); err != nil {
		return composerError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comp.State())
}

// AddFiles runs the ingestion pipeline over the multipart "files" field.
// The response is sent once every accepted file finished uploading.
func (h *ComposerHandler) AddFiles(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse form",
		})
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No files selected",
		})
	}

	uploads := make([]composer.FileUpload, 0, len(headers))
	for _, fh := range headers {
		upload, err := h.readUpload(fh)
		if err != nil {
			slog.Error("error reading upload", "file", fh.Filename, "error", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unable to read " + fh.Filename,
			})
		}
		uploads = append(uploads, upload)
	}

	comp := h.composer(c)
	result := comp.IngestFiles(c.UserContext(), uploads)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"result": result,
		"state":  comp.State(),
	})
}

// readUpload leaves the content of oversized files unread; the pipeline
// rejects them by size alone.
func (h *ComposerHandler) readUpload(fh *multipart.FileHeader) (composer.FileUpload, error) {
	upload := composer.FileUpload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
	}
	if h.maxUploadSize > 0 && fh.Size > h.maxUploadSize {
		return upload, nil
	}

	f, err := fh.Open()
	if err != nil {
		return upload, err
	}
	defer f.Close()

	upload.Data, err = io.ReadAll(f)
	return upload, err
}

func (h *ComposerHandler) AddURL(c *fiber.Ctx) error {
	var req transfer.MediaURLRequest
	if body := bindBody(c, h.validate, &req); body != nil {
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	comp := h.composer(c)
	item, err := comp.IngestURL(req.URL)
	if err != nil {
		return composerError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"item":  item,
		"state": comp.State(),
	})
}

func (h *ComposerHandler) AddFromLibrary(c *fiber.Ctx) error {
	var req transfer.LibraryMediaRequest
	if body := bindBody(c, h.validate, &req); body != nil {
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	asset, err := h.library.Get(c.UserContext(), GetUserID(c), req.AssetID)
	if err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to get media",
		})
	}

	comp := h.composer(c)
	item := comp.IngestFromLibrary(asset)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"item":  item,
		"state": comp.State(),
	})
}

func (h *ComposerHandler) RemoveMedia(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing media id",
		})
	}

	comp := h.composer(c)
	comp.Remove(id)
	return c.Status(fiber.StatusOK).JSON(comp.State())
}

// Dispatch publishes now, or schedules when both schedule fields are set.
func (h *ComposerHandler) Dispatch(c *fiber.Ctx) error {
	comp := h.composer(c)
	result, err := comp.Dispatch(c.UserContext())
	if err != nil {
		return composerError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"result": result,
		"state":  comp.State(),
	})
}

func (h *ComposerHandler) DismissNotification(c *fiber.Ctx) error {
	comp := h.composer(c)
	comp.Dismiss()
	return c.Status(fiber.StatusOK).JSON(comp.State())
}
