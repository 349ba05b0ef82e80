package core

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vskvj3/vessel/internal/datastructures"
	"github.com/vskvj3/vessel/internal/utils"
)

var (
	ErrMissingArgument = errors.New("missing argument")
	ErrUnknownCommand  = errors.New("unknown command")
)

// Response codes sent alongside status ERROR.
const (
	CodeInvalidArgument   = "INVALID_ARGUMENT"
	CodeIndexOutOfRange   = "INDEX_OUT_OF_RANGE"
	CodeEmptyCollection   = "EMPTY_COLLECTION"
	CodeNullReference     = "NULL_REFERENCE"
	CodeIteratorExhausted = "ITERATOR_EXHAUSTED"
	CodeNotFound          = "NOT_FOUND"
	CodeKeyExists         = "KEY_EXISTS"
	CodeWrongType         = "WRONG_TYPE"
	CodeMissingArgument   = "MISSING_ARGUMENT"
	CodeUnknownCommand    = "UNKNOWN_COMMAND"
	CodeInternal          = "INTERNAL"
)

type CommandHandler struct {
	Store *Store
}

// Create a new CommandHandler instance
func NewCommandHandler(store *Store) *CommandHandler {
	return &CommandHandler{Store: store}
}

// HandleCommand runs one request and returns the response map. Failures are
// returned as errors; ErrorResponse turns them into a response.
func (h *CommandHandler) HandleCommand(request map[string]interface{}) (map[string]interface{}, error) {
	command, valid := request["command"].(string)
	if !valid {
		return nil, errors.Wrap(ErrMissingArgument, "invalid or missing 'command' field")
	}
	command = strings.ToUpper(command)

	if response, handled, err := h.handleList(command, request); handled {
		return response, err
	}
	if response, handled, err := h.handleArray(command, request); handled {
		return response, err
	}

	switch command {
	case "PING":
		return success("message", "PONG"), nil

	case "ECHO":
		message, err := stringArg(request, "message")
		if err != nil {
			return nil, err
		}
		return success("message", message), nil

	case "KEYS":
		return success("value", h.Store.Keys()), nil

	case "TYPE":
		key, err := stringArg(request, "key")
		if err != nil {
			return nil, err
		}
		kind, err := h.Store.Type(key)
		if err != nil {
			return nil, err
		}
		return success("value", kind), nil

	case "DEL":
		key, err := stringArg(request, "key")
		if err != nil {
			return nil, err
		}
		return success("value", h.Store.Delete(key)), nil

	case "SHOW":
		key, err := stringArg(request, "key")
		if err != nil {
			return nil, err
		}
		kind, err := h.Store.Type(key)
		if err != nil {
			return nil, err
		}
		var rendered string
		if kind == KindList {
			err = h.Store.WithList(key, false, func(l *List) error {
				rendered = l.String()
				return nil
			})
		} else {
			err = h.Store.WithArray(key, false, func(a *Array) error {
				rendered = a.String()
				return nil
			})
		}
		if err != nil {
			return nil, err
		}
		return success("value", rendered), nil

	case "DUMP":
		key, err := stringArg(request, "key")
		if err != nil {
			return nil, err
		}
		kind, payload, err := h.Store.Dump(key)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "type": kind, "value": payload}, nil

	case "RESTORE":
		key, err := stringArg(request, "key")
		if err != nil {
			return nil, err
		}
		kind, err := stringArg(request, "type")
		if err != nil {
			return nil, err
		}
		payload, err := bytesArg(request, "payload")
		if err != nil {
			return nil, err
		}
		if err := h.Store.Restore(key, kind, payload); err != nil {
			return nil, err
		}
		return success(), nil
	}

	return nil, errors.Wrapf(ErrUnknownCommand, "%s", command)
}

// handleList runs the list commands. handled is false when command is not
// a list command.
func (h *CommandHandler) handleList(command string, request map[string]interface{}) (response map[string]interface{}, handled bool, err error) {
	var (
		create bool
		op     func(l *List) error
	)

	switch command {
	case "LADDFIRST", "LPUSH", "LADDLAST", "PUSH", "RPUSH":
		value, err := stringArg(request, "value")
		if err != nil {
			return nil, true, err
		}
		create = true
		op = func(l *List) error {
			if command == "LADDFIRST" || command == "LPUSH" {
				l.AddFirst(value)
			} else {
				l.AddLast(value)
			}
			response = success("length", l.Len())
			return nil
		}

	case "LPEEKFIRST", "LPEEKLAST", "LREMOVEFIRST", "LPOP", "LREMOVELAST", "RPOP":
		op = func(l *List) error {
			var (
				value string
				err   error
			)
			switch command {
			case "LPEEKFIRST":
				value, err = l.PeekFirst()
			case "LPEEKLAST":
				value, err = l.PeekLast()
			case "LREMOVEFIRST", "LPOP":
				value, err = l.RemoveFirst()
			default:
				value, err = l.RemoveLast()
			}
			if err != nil {
				return err
			}
			response = success("value", value)
			return nil
		}

	case "LREMOVE", "LINDEXOF", "LCONTAINS":
		value, err := stringArg(request, "value")
		if err != nil {
			return nil, true, err
		}
		op = func(l *List) error {
			switch command {
			case "LREMOVE":
				response = success("value", l.Remove(value))
			case "LINDEXOF":
				response = success("value", l.IndexOf(value))
			default:
				response = success("value", l.Contains(value))
			}
			return nil
		}

	case "LREMOVEAT":
		index, err := intArg(request, "index")
		if err != nil {
			return nil, true, err
		}
		op = func(l *List) error {
			value, err := l.RemoveAt(index)
			if err != nil {
				return err
			}
			response = success("value", value)
			return nil
		}

	case "LLEN", "LRANGE", "LREVRANGE", "LCLEAR":
		op = func(l *List) error {
			switch command {
			case "LLEN":
				response = success("value", l.Len())
			case "LRANGE":
				response = success("value", l.Values())
			case "LREVRANGE":
				values := make([]string, 0, l.Len())
				for _, v := range l.Backward() {
					values = append(values, v)
				}
				response = success("value", values)
			default:
				l.Clear()
				response = success()
			}
			return nil
		}

	default:
		return nil, false, nil
	}

	key, err := stringArg(request, "key")
	if err != nil {
		return nil, true, err
	}
	if err := h.Store.WithList(key, create, op); err != nil {
		return nil, true, err
	}
	return response, true, nil
}

// handleArray runs the growable array commands. handled is false when
// command is not an array command.
func (h *CommandHandler) handleArray(command string, request map[string]interface{}) (response map[string]interface{}, handled bool, err error) {
	var (
		create bool
		op     func(a *Array) error
		// keyed replaces op for commands that do not act on an existing array.
		keyed func(key string) error
	)

	switch command {
	case "ACREATE":
		capacity, err := intArg(request, "capacity")
		if err != nil {
			return nil, true, err
		}
		keyed = func(key string) error {
			return h.Store.CreateArray(key, capacity)
		}

	case "ACLONE":
		dest, err := stringArg(request, "dest")
		if err != nil {
			return nil, true, err
		}
		keyed = func(key string) error {
			return h.Store.CloneArray(key, dest)
		}

	case "AAPPEND":
		value, err := stringArg(request, "value")
		if err != nil {
			return nil, true, err
		}
		create = true
		op = func(a *Array) error {
			if err := h.Store.appendArray(a, value); err != nil {
				return err
			}
			response = sizes(a)
			return nil
		}

	case "AGET":
		index, err := intArg(request, "index")
		if err != nil {
			return nil, true, err
		}
		op = func(a *Array) error {
			value, err := a.Get(index)
			if err != nil {
				return err
			}
			response = success("value", value)
			return nil
		}

	case "ASET":
		index, err := intArg(request, "index")
		if err != nil {
			return nil, true, err
		}
		value, err := stringArg(request, "value")
		if err != nil {
			return nil, true, err
		}
		op = func(a *Array) error {
			if err := a.Set(index, value); err != nil {
				return err
			}
			response = success()
			return nil
		}

	case "AREMOVEAT":
		index, err := intArg(request, "index")
		if err != nil {
			return nil, true, err
		}
		op = func(a *Array) error {
			if err := a.RemoveAt(index); err != nil {
				return err
			}
			response = sizes(a)
			return nil
		}

	case "ASWAP":
		i, err := intArg(request, "i")
		if err != nil {
			return nil, true, err
		}
		j, err := intArg(request, "j")
		if err != nil {
			return nil, true, err
		}
		op = func(a *Array) error {
			if err := a.Swap(i, j); err != nil {
				return err
			}
			response = success()
			return nil
		}

	case "AINDEXOF", "ACONTAINS", "AFILL":
		value, err := stringArg(request, "value")
		if err != nil {
			return nil, true, err
		}
		op = func(a *Array) error {
			switch command {
			case "AINDEXOF":
				response = success("value", a.IndexOf(value))
			case "ACONTAINS":
				response = success("value", a.Contains(value))
			default:
				a.Fill(value)
				response = success()
			}
			return nil
		}

	case "ALEN", "ARANGE", "ACLEAR":
		op = func(a *Array) error {
			switch command {
			case "ALEN":
				response = sizes(a)
			case "ARANGE":
				response = success("value", a.Values())
			default:
				a.Clear()
				response = sizes(a)
			}
			return nil
		}

	default:
		return nil, false, nil
	}

	key, err := stringArg(request, "key")
	if err != nil {
		return nil, true, err
	}
	if keyed != nil {
		if err := keyed(key); err != nil {
			return nil, true, err
		}
		return success(), true, nil
	}
	if err := h.Store.WithArray(key, create, op); err != nil {
		return nil, true, err
	}
	return response, true, nil
}

// ErrorResponse builds the response for a failed command.
func ErrorResponse(err error) map[string]interface{} {
	return map[string]interface{}{"status": "ERROR", "code": ErrorCode(err), "message": err.Error()}
}

// ErrorCode classifies err into one of the response codes.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, datastructures.ErrIteratorExhausted):
		return CodeIteratorExhausted
	case errors.Is(err, datastructures.ErrIndexOutOfRange):
		return CodeIndexOutOfRange
	case errors.Is(err, datastructures.ErrInvalidArgument):
		return CodeInvalidArgument
	case errors.Is(err, datastructures.ErrEmptyCollection):
		return CodeEmptyCollection
	case errors.Is(err, datastructures.ErrNullReference):
		return CodeNullReference
	case errors.Is(err, ErrKeyNotFound):
		return CodeNotFound
	case errors.Is(err, ErrKeyExists):
		return CodeKeyExists
	case errors.Is(err, ErrWrongType):
		return CodeWrongType
	case errors.Is(err, ErrMissingArgument):
		return CodeMissingArgument
	case errors.Is(err, ErrUnknownCommand):
		return CodeUnknownCommand
	default:
		return CodeInternal
	}
}

// success builds a status OK response from alternating field names and values.
func success(fields ...interface{}) map[string]interface{} {
	response := map[string]interface{}{"status": "OK"}
	for i := 0; i+1 < len(fields); i += 2 {
		response[fields[i].(string)] = fields[i+1]
	}
	return response
}

func sizes(a *Array) map[string]interface{} {
	return success("length", a.Len(), "capacity", a.Cap())
}

func stringArg(request map[string]interface{}, name string) (string, error) {
	v, present := request[name]
	if !present {
		return "", errors.Wrapf(ErrMissingArgument, "'%s' field is required", name)
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", errors.Wrapf(datastructures.ErrInvalidArgument, "'%s' must be a string, got %T", name, v)
	}
}

func intArg(request map[string]interface{}, name string) (int, error) {
	v, present := request[name]
	if !present {
		return 0, errors.Wrapf(ErrMissingArgument, "'%s' field is required", name)
	}
	n, err := utils.ToInt(v)
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "'%s'", name), datastructures.ErrInvalidArgument)
	}
	return n, nil
}

func bytesArg(request map[string]interface{}, name string) ([]byte, error) {
	v, present := request[name]
	if !present {
		return nil, errors.Wrapf(ErrMissingArgument, "'%s' field is required", name)
	}
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		return nil, errors.Wrapf(datastructures.ErrInvalidArgument, "'%s' must be binary, got %T", name, v)
	}
}
