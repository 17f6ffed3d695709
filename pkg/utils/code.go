package utils

const (
	SUCCESS          = 0
	PARAMETER_ERROR  = 1001
	MIRROR_NOT_FOUND = 1002
	FETCH_DATA_ERROR = 2001
	RENDER_ERROR     = 2002
	WRITE_DATA_ERROR = 2003
	NOT_IMPLEMENTED  = 3001
)

var messages = map[int]string{
	SUCCESS:          "",
	PARAMETER_ERROR:  "invalid parameter",
	MIRROR_NOT_FOUND: "mirror not found",
	FETCH_DATA_ERROR: "failed to fetch mirrors",
	RENDER_ERROR:     "failed to render page",
	WRITE_DATA_ERROR: "failed to write mirror",
	NOT_IMPLEMENTED:  "not implemented",
}

func Message(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return "internal error"
}
