package service

import "errors"

var (
	// ErrInvalidParameter - параметр запроса вне допустимого диапазона
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrUnknownReportKind - запрошен неизвестный тип отчета
	ErrUnknownReportKind = errors.New("unknown report kind")
)
