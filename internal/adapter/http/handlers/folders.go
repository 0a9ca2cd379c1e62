package handlers

import (
	"net/http"

	"besttodo/internal/adapter/http/dto"
	"besttodo/internal/adapter/http/mapper"
	"besttodo/internal/adapter/http/middleware"
	"besttodo/internal/adapter/http/validation"
	"besttodo/internal/core/domain"
	"besttodo/internal/core/ports"
	"besttodo/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FolderHandler struct {
	folderService ports.FolderService
}

func NewFolderHandler(folderService ports.FolderService) *FolderHandler {
	return &FolderHandler{folderService: folderService}
}

func (h *FolderHandler) CreateFolder(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondError(c, domain.ErrInvalidPayload, apierrors.MsgFailCreateFolder)
		return
	}

	input, err := validation.BuildCreateFolderInput(body)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateFolder)
		return
	}

	folder, err := h.folderService.CreateFolder(c.Request.Context(), middleware.GetOwner(c), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateFolder)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToFolderItem(folder))
}

func (h *FolderHandler) GetFolder(c *gin.Context) {
	folderID := c.Param("folderId")

	folder, err := h.folderService.GetFolder(c.Request.Context(), middleware.GetOwner(c), folderID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetFolder, zap.String("folder_id", folderID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToFolderItem(folder))
}

func (h *FolderHandler) ListFolders(c *gin.Context) {
	folders, err := h.folderService.ListFolders(c.Request.Context(), middleware.GetOwner(c))
	if err != nil {
		respondError(c, err, apierrors.MsgFailListFolders)
		return
	}

	c.JSON(http.StatusOK, dto.FolderList{Items: mapper.ToFolderItems(folders)})
}

func (h *FolderHandler) UpdateFolder(c *gin.Context) {
	folderID := c.Param("folderId")

	body, err := c.GetRawData()
	if err != nil {
		respondError(c, domain.ErrInvalidPayload, apierrors.MsgFailUpdateFolder)
		return
	}

	patch, err := validation.BuildUpdateFolderInput(body)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateFolder)
		return
	}

	folder, err := h.folderService.UpdateFolder(c.Request.Context(), middleware.GetOwner(c), folderID, patch)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateFolder, zap.String("folder_id", folderID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToFolderItem(folder))
}

// DeleteFolder leaves member tasks untouched.
func (h *FolderHandler) DeleteFolder(c *gin.Context) {
	folderID := c.Param("folderId")

	if err := h.folderService.DeleteFolder(c.Request.Context(), middleware.GetOwner(c), folderID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteFolder, zap.String("folder_id", folderID))
		return
	}

	respondMessage(c, http.StatusOK, apierrors.MsgFolderDeleted)
}
