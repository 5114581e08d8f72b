// Package admin exposes the CRUD and statistics routes for every entity of
// the studio database. Handlers bind the request, call the matching
// controller and wrap the result in the shared envelope.
package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"studio/admin/api/common"
	"studio/admin/codes"
	"studio/admin/errs"
	"studio/admin/log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, common.Response{
		Timestamp: time.Now().Unix(),
		Code:      codes.CODE_SUCCESS,
		Msg:       "success",
		Data:      data,
	})
}

// bindJSON binds the request body into obj. Missing required fields and
// wrongly-typed fields surface as NullValuesError naming the fields; only a
// body that cannot be read as JSON at all falls back to the generic
// bad-params envelope.
func (h *Handler) bindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &verrs):
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		h.fail(c, &errs.NullValuesError{Fields: fields})
	case errors.As(err, &typeErr):
		h.fail(c, &errs.NullValuesError{Fields: []string{typeErr.Field}})
	default:
		h.badParams(c, "param error")
	}
	return false
}

func (h *Handler) badParams(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, common.Response{
		Timestamp: time.Now().Unix(),
		Code:      codes.CODE_ERR_BAD_PARAMS,
		Msg:       msg,
	})
}

// fail translates a controller error into the envelope. Missing rows map to
// 404; validation and referential failures come back with status 200 so the
// client renders them inline on the form.
func (h *Handler) fail(c *gin.Context, err error) {
	res := common.Response{Timestamp: time.Now().Unix()}

	var fk *errs.ForeignKeyError
	var ref *errs.MissingReferenceError
	var null *errs.NullValuesError
	var internal *errs.InternalError
	switch {
	case errs.IsNotFound(err):
		res.Code = codes.CODE_ERR_OBJ_NOT_FOUND
		res.Msg = err.Error()
		c.JSON(http.StatusNotFound, res)
		return
	case errors.Is(err, errs.ErrInvalidDate):
		res.Code = codes.CODE_ERR_INVALID_DATE
		res.Msg = err.Error()
	case errors.As(err, &fk):
		res.Code = codes.CODE_ERR_FOREIGN_KEY
		res.Msg = fk.Message
	case errors.As(err, &ref):
		res.Code = codes.CODE_ERR_BROKEN_REF
		res.Msg = ref.Error()
	case errors.As(err, &null):
		res.Code = codes.CODE_ERR_NULL_VALUES
		res.Msg = null.Error()
	case errors.As(err, &internal):
		log.Errorf("unexpected database error: %v", internal.Err)
		res.Code = codes.CODE_ERR_UNKNOWN
		res.Msg = "internal error"
		c.JSON(http.StatusInternalServerError, res)
		return
	default:
		log.Errorf("unhandled error: %v", err)
		res.Code = codes.CODE_ERR_UNKNOWN
		res.Msg = "internal error"
		c.JSON(http.StatusInternalServerError, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// queryID reads the numeric id query parameter.
func queryID(c *gin.Context) (int32, bool) {
	raw := c.Query("id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(id), true
}
