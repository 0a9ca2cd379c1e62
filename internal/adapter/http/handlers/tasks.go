package handlers

import (
	"net/http"

	"besttodo/internal/adapter/http/mapper"
	"besttodo/internal/adapter/http/middleware"
	"besttodo/internal/adapter/http/validation"
	"besttodo/internal/core/domain"
	"besttodo/internal/core/ports"
	"besttodo/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondError(c, domain.ErrInvalidPayload, apierrors.MsgFailCreateTask)
		return
	}

	input, err := validation.BuildCreateTaskInput(body)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), middleware.GetOwner(c), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID := c.Param("taskId")

	task, err := h.taskService.GetTask(c.Request.Context(), middleware.GetOwner(c), taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetTask, zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	filter, err := validation.BuildListTasksFilter(
		c.Query("status"),
		c.Query("folderId"),
		c.Query("limit"),
		c.Query("pageToken"),
	)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask)
		return
	}

	page, err := h.taskService.ListTasks(c.Request.Context(), middleware.GetOwner(c), filter)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskList(page))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID := c.Param("taskId")

	body, err := c.GetRawData()
	if err != nil {
		respondError(c, domain.ErrInvalidPayload, apierrors.MsgFailUpdateTask)
		return
	}

	patch, err := validation.BuildUpdateTaskInput(body)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), middleware.GetOwner(c), taskID, patch)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask, zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID := c.Param("taskId")

	if err := h.taskService.DeleteTask(c.Request.Context(), middleware.GetOwner(c), taskID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTask, zap.String("task_id", taskID))
		return
	}

	respondMessage(c, http.StatusOK, apierrors.MsgTaskDeleted)
}
