package errno

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	SuccessCode                = 0
	ServiceErrCode             = 10001
	ParamErrCode               = 10002
	AuthorizationFailedErrCode = 10003
	NotFoundErrCode            = 10004
	SelfActionErrCode          = 10005
	TokenInvalidErrCode        = 10006
	TooManyRequestsErrCode     = 10007
	MongoErrCode               = 10008
	OssErrCode                 = 10009
	UserExistErrCode           = 10010
)

// ErrNo carries a business code, a client facing message and the HTTP status
// the envelope is written with.
type ErrNo struct {
	ErrCode    int64
	ErrMsg     string
	StatusCode int
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, status int, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg, StatusCode: status}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success                = NewErrNo(SuccessCode, http.StatusOK, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, http.StatusInternalServerError, "Internal server error")
	ParamErr               = NewErrNo(ParamErrCode, http.StatusBadRequest, "Wrong parameter has been given")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedErrCode, http.StatusUnauthorized, "You are not authorized to perform this action")
	TokenInvalidErr        = NewErrNo(TokenInvalidErrCode, http.StatusUnauthorized, "Invalid or expired access token")
	NotFoundErr            = NewErrNo(NotFoundErrCode, http.StatusNotFound, "Resource not found")
	SelfActionErr          = NewErrNo(SelfActionErrCode, http.StatusBadRequest, "You cannot perform this action on your own content")
	TooManyRequestsErr     = NewErrNo(TooManyRequestsErrCode, http.StatusTooManyRequests, "Too many requests, please try again later")
	MongoErr               = NewErrNo(MongoErrCode, http.StatusInternalServerError, "Database operation failed")
	OssErr                 = NewErrNo(OssErrCode, http.StatusInternalServerError, "Media storage operation failed")
	UserExistErr           = NewErrNo(UserExistErrCode, http.StatusConflict, "User with email or username already exists")
)

// ConvertErr convert error to ErrNo
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	return ServiceErr
}
