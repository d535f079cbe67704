package sfmcp

import "errors"

func IsRPCError(err error) bool {
	var e *RPCError
	return errors.As(err, &e)
}

func IsTransportError(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

func IsDecodeError(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}

func IsAuthError(err error) bool {
	var e *TransportError
	return errors.As(err, &e) && (e.StatusCode == 401 || e.StatusCode == 403)
}

func IsRateLimited(err error) bool {
	var e *TransportError
	return errors.As(err, &e) && e.StatusCode == 429
}

func IsServerError(err error) bool {
	var e *TransportError
	return errors.As(err, &e) && e.StatusCode >= 500 && e.StatusCode <= 599
}
