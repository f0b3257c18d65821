package templates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/dto"
	"github.com/GlebRadaev/vivento/internal/service/templateservice"
	"github.com/GlebRadaev/vivento/pkg/utils"
	"github.com/GlebRadaev/vivento/pkg/validate"
)

//go:generate mockgen -source=templates.go -destination=mock_templates.go -package=templates

type Service interface {
	List(ctx context.Context) ([]domain.Template, error)
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.Template, error)
	Get(ctx context.Context, id int) (*domain.Template, error)
	Create(ctx context.Context, t *domain.Template) (*domain.Template, error)
	Update(ctx context.Context, t *domain.Template) (*domain.Template, error)
	Delete(ctx context.Context, id int) error
}

type TemplateHandler struct {
	templateService Service
}

func New(templateService Service) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, templateservice.ErrTemplateNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, templateservice.ErrInvalidTemplate), errors.Is(err, templateservice.ErrInvalidCategory):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// List godoc
//
//	@Summary		List templates
//	@Tags			Templates
//	@Produce		json
//	@Success		200	{array}		dto.TemplateDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/templates [get]
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.templateService.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTemplateDTOs(list))
}

// ListByCategory godoc
//
//	@Summary		List templates of a category
//	@Tags			Templates
//	@Produce		json
//	@Param			category	path		string	true	"Category"	Enums(wedding, engagement, birthday, corporate)
//	@Success		200			{array}		dto.TemplateDTO
//	@Failure		422			{object}	utils.Response	"Unknown category"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/templates/category/{category} [get]
func (h *TemplateHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(chi.URLParam(r, "category"))
	list, err := h.templateService.ListByCategory(r.Context(), category)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTemplateDTOs(list))
}

// Get godoc
//
//	@Summary		Get template
//	@Tags			Templates
//	@Produce		json
//	@Param			id	path		int	true	"Template ID"
//	@Success		200	{object}	dto.TemplateDTO
//	@Failure		400	{object}	utils.Response	"Invalid template id"
//	@Failure		404	{object}	utils.Response	"Template not found"
//	@Router			/api/templates/{id} [get]
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid template id")
		return
	}
	tpl, err := h.templateService.Get(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTemplateDTO(tpl))
}

// Create godoc
//
//	@Summary		Create template
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TemplateRequestDTO	true	"Template"
//	@Success		201		{object}	dto.TemplateDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Router			/api/admin/templates [post]
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TemplateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	created, err := h.templateService.Create(r.Context(), req.ToDomain(0))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTemplateDTO(created))
}

// Update godoc
//
//	@Summary		Replace template
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Template ID"
//	@Param			request	body		dto.TemplateRequestDTO	true	"Template"
//	@Success		200		{object}	dto.TemplateDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Template not found"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Router			/api/admin/templates/{id} [put]
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid template id")
		return
	}

	var req dto.TemplateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	updated, err := h.templateService.Update(r.Context(), req.ToDomain(id))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTemplateDTO(updated))
}

// Delete godoc
//
//	@Summary	Delete template
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Template ID"
//	@Success	204
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Failure	404	{object}	utils.Response	"Template not found"
//	@Router		/api/admin/templates/{id} [delete]
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid template id")
		return
	}
	if err := h.templateService.Delete(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
