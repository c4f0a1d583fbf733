package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
	BadGateway          = 502
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrEnumInvalid        = errors.New("枚举值无效")
	ErrPlatformNotFound   = errors.New("平台不存在")
	ErrPlatformNameExist  = errors.New("平台名称已存在")
	ErrProfileNotFound    = errors.New("个人档案不存在")
	ErrPillarNotFound     = errors.New("内容支柱不存在")
	ErrIdeaNotFound       = errors.New("内容灵感不存在")
	ErrContentNotFound    = errors.New("内容不存在")
	ErrSubtaskNotFound    = errors.New("子任务不存在")
	ErrTaskNotFound       = errors.New("任务不存在")
	ErrGateway            = errors.New("AI服务暂时不可用，请稍后重试")
	ErrGatewayUnavailable = errors.New("AI服务未配置")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrEnumInvalid:        BadRequest,
	ErrPlatformNotFound:   NotFound,
	ErrPlatformNameExist:  BadRequest,
	ErrProfileNotFound:    NotFound,
	ErrPillarNotFound:     NotFound,
	ErrIdeaNotFound:       NotFound,
	ErrContentNotFound:    NotFound,
	ErrSubtaskNotFound:    NotFound,
	ErrTaskNotFound:       NotFound,
	ErrGateway:            BadGateway,
	ErrGatewayUnavailable: InternalServerError,
	UnExpectedError:       InternalServerError,
}
