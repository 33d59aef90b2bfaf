package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cdms/internal/http/middleware"
	"cdms/internal/model"
	"cdms/internal/service"
)

// ListDocuments handles GET /api/documents with limit & offset pagination.
func ListDocuments(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := docSvc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(res)
	}
}

// GetDocument handles GET /api/documents/:id.
func GetDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := docSvc.Get(c.UserContext(), id)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(doc)
	}
}

// UploadDocument handles POST /api/documents (multipart/form-data).
// Form fields: title, description, department; file field name: file.
// The upload is attributed to the authenticated user from the bearer token.
func UploadDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		in := service.CreateDocumentInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Department:  model.Department(c.FormValue("department")),
			Filename:    fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
		}
		if claims := middleware.ClaimsFromCtx(c); claims != nil {
			in.UploadedBy = &claims.UserID
		}

		doc, err := docSvc.Create(c.UserContext(), f, in)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

type updateDocumentRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Department  *model.Department `json:"department"`
}

// UpdateDocument handles PUT /api/documents/:id with a partial metadata patch.
// File replacement is not supported here.
func UpdateDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req updateDocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		doc, err := docSvc.Update(c.UserContext(), id, service.UpdateDocumentInput{
			Title:       req.Title,
			Description: req.Description,
			Department:  req.Department,
		})
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(doc)
	}
}

// DeleteDocument handles DELETE /api/documents/:id.
func DeleteDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := docSvc.Delete(c.UserContext(), id); err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(fiber.Map{"message": "document deleted"})
	}
}

// DownloadDocument handles GET /api/documents/:id/download by redirecting to
// a time-limited presigned URL for the stored object.
func DownloadDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := docSvc.DownloadURL(c.UserContext(), id)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.Redirect(u, fiber.StatusFound)
	}
}
