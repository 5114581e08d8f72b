package codes

// API result codes carried in the response envelope.
const (
	CODE_SUCCESS            = 0
	CODE_ERR_BAD_PARAMS     = 1001
	CODE_ERR_OBJ_NOT_FOUND  = 1002
	CODE_ERR_INVALID_DATE   = 1003
	CODE_ERR_FOREIGN_KEY    = 1004
	CODE_ERR_NULL_VALUES    = 1005
	CODE_ERR_BROKEN_REF     = 1006
	CODE_ERR_UNKNOWN        = 1500
)
