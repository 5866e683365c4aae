package notifying

import "errors"

var (
	errSendPanic = errors.New("envio interrompido por panic")
	errRender    = errors.New("digest não renderizado")
)
