package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/features/parts/documents/storage"
	helper "mantenimiento_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type DocumentController struct {
	Store    storage.Store
	MaxBytes int64
}

func NewDocumentController(store storage.Store, maxMB int) *DocumentController {
	if maxMB <= 0 {
		maxMB = 20
	}
	return &DocumentController{Store: store, MaxBytes: int64(maxMB) << 20}
}

type deleteRequest struct {
	PartNumber   string `json:"partNumber"`
	DocumentType string `json:"documentType"`
	FileName     string `json:"fileName"`
}

func storeErr(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return helper.NotFoundErr("file not found")
	}
	return helper.StorageErr("document storage failed", err)
}

// POST /guardar_archivo  (multipart: file, partNumber, documentType)
func (h *DocumentController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil || strings.TrimSpace(fh.Filename) == "" {
		return helper.RespondError(c, helper.FieldErr("file", "file is required"))
	}
	if _, ok := constants.DetectDocumentKind(fh.Filename); !ok {
		return helper.RespondError(c, helper.FieldErr("file", "only PDF and Excel files are allowed"))
	}
	if fh.Size > h.MaxBytes {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("file exceeds %d MB", h.MaxBytes>>20))
	}

	key, err := storage.NewKey(c.FormValue("partNumber"), c.FormValue("documentType"), fh.Filename)
	if err != nil {
		return helper.RespondError(c, err)
	}

	src, err := fh.Open()
	if err != nil {
		return helper.RespondError(c, helper.ValidationErr("cannot read uploaded file"))
	}
	defer src.Close()

	if err := h.Store.Put(c.UserContext(), key, src, fh.Size, constants.DocumentContentType(key.File)); err != nil {
		return helper.RespondError(c, storeErr(err))
	}
	log.Printf("[DOCS] stored %s (%d bytes) on %s", key.Path(), fh.Size, h.Store.Name())
	return helper.JsonCreated(c, "file saved", fiber.Map{"file": key.File, "url": key.URL()})
}

// GET /obtener_archivos?partNumber=&docType=
func (h *DocumentController) List(c *fiber.Ctx) error {
	part, doc := c.Query("partNumber"), c.Query("docType")
	if strings.TrimSpace(part) == "" || strings.TrimSpace(doc) == "" {
		return helper.RespondError(c, helper.ValidationErr("partNumber and docType are required"))
	}
	folder, err := storage.NewFolder(part, doc)
	if err != nil {
		return helper.RespondError(c, err)
	}
	names, err := h.Store.List(c.UserContext(), folder)
	if err != nil {
		return helper.RespondError(c, storeErr(err))
	}
	urls := make([]string, 0, len(names))
	for _, n := range names {
		urls = append(urls, storage.Key{Part: folder.Part, DocType: folder.DocType, File: n}.URL())
	}
	return c.JSON(fiber.Map{"success": true, "files": names, "urls": urls})
}

// GET /archivos/:part/:doc/:file
func (h *DocumentController) Serve(c *fiber.Ctx) error {
	key, err := storage.NewKey(c.Params("part"), c.Params("doc"), c.Params("file"))
	if err != nil {
		return helper.RespondError(c, err)
	}
	body, err := h.Store.Open(c.UserContext(), key)
	if err != nil {
		return helper.RespondError(c, storeErr(err))
	}
	c.Set(fiber.HeaderContentType, constants.DocumentContentType(key.File))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", key.File))
	return c.SendStream(body)
}

// POST /borrar_archivo {partNumber, documentType, fileName}
func (h *DocumentController) Delete(c *fiber.Ctx) error {
	var req deleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RespondError(c, helper.ValidationErr("invalid request body"))
	}
	key, err := storage.NewKey(req.PartNumber, req.DocumentType, req.FileName)
	if err != nil {
		return helper.RespondError(c, err)
	}
	if err := h.Store.Delete(c.UserContext(), key); err != nil {
		return helper.RespondError(c, storeErr(err))
	}
	return helper.JsonDeleted(c, "file deleted", fiber.Map{"file": key.File})
}

// DELETE /borrar_archivos_columna {partNumber, documentType}
func (h *DocumentController) DeleteFolder(c *fiber.Ctx) error {
	var req deleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RespondError(c, helper.ValidationErr("invalid request body"))
	}
	folder, err := storage.NewFolder(req.PartNumber, req.DocumentType)
	if err != nil {
		return helper.RespondError(c, err)
	}
	n, err := h.Store.DeleteFolder(c.UserContext(), folder)
	if err != nil {
		return helper.RespondError(c, storeErr(err))
	}
	return helper.JsonDeleted(c, "files deleted", fiber.Map{"deleted": n})
}
