package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")

var ErrorBusinessIdRequired = errors.New("business id is required")

func ErrorPanic(err error) {
	if err != nil {
		panic(err)
	}
}
