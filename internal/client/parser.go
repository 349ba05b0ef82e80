package client

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var ErrInvalidCommand = errors.New("invalid command")

// commandArgs lists the request fields each command takes, in the order
// they are typed. Fields named in intFields are sent as integers.
var commandArgs = map[string][]string{
	"PING": {},
	"KEYS": {},
	"TYPE": {"key"},
	"DEL":  {"key"},
	"SHOW": {"key"},
	"DUMP": {"key"},

	"LADDFIRST":    {"key", "value"},
	"LADDLAST":     {"key", "value"},
	"PUSH":         {"key", "value"},
	"RPUSH":        {"key", "value"},
	"LPUSH":        {"key", "value"},
	"LPEEKFIRST":   {"key"},
	"LPEEKLAST":    {"key"},
	"LREMOVEFIRST": {"key"},
	"LPOP":         {"key"},
	"LREMOVELAST":  {"key"},
	"RPOP":         {"key"},
	"LREMOVE":      {"key", "value"},
	"LREMOVEAT":    {"key", "index"},
	"LINDEXOF":     {"key", "value"},
	"LCONTAINS":    {"key", "value"},
	"LLEN":         {"key"},
	"LRANGE":       {"key"},
	"LREVRANGE":    {"key"},
	"LCLEAR":       {"key"},

	"ACREATE":   {"key", "capacity"},
	"AAPPEND":   {"key", "value"},
	"AGET":      {"key", "index"},
	"ASET":      {"key", "index", "value"},
	"AREMOVEAT": {"key", "index"},
	"AINDEXOF":  {"key", "value"},
	"ACONTAINS": {"key", "value"},
	"AFILL":     {"key", "value"},
	"ASWAP":     {"key", "i", "j"},
	"ACLONE":    {"key", "dest"},
	"ACLEAR":    {"key"},
	"ALEN":      {"key"},
	"ARANGE":    {"key"},
}

var intFields = map[string]bool{"index": true, "capacity": true, "i": true, "j": true}

// ParseCommand turns a typed line such as "AGET nums 2" into a request map,
// checking the argument count first.
func ParseCommand(input string) (map[string]interface{}, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil, errors.Wrap(ErrInvalidCommand, "no command entered")
	}

	command := strings.ToUpper(parts[0])
	request := map[string]interface{}{
		"command": command,
	}
	args := parts[1:]

	switch command {
	case "ECHO":
		// ECHO requires a message
		if len(args) == 0 {
			return nil, errors.Wrap(ErrInvalidCommand, "ECHO requires a message")
		}
		request["message"] = strings.Join(args, " ")
		return request, nil

	case "RESTORE":
		// The payload is the hex form printed for DUMP.
		if len(args) != 3 {
			return nil, errors.Wrap(ErrInvalidCommand, "RESTORE requires a key, a type and a hex payload")
		}
		payload, err := decodeHex(args[2])
		if err != nil {
			return nil, err
		}
		request["key"] = args[0]
		request["type"] = args[1]
		request["payload"] = payload
		return request, nil
	}

	fields, known := commandArgs[command]
	if !known {
		return nil, errors.Wrapf(ErrInvalidCommand, "unknown command: %s", command)
	}
	if len(args) != len(fields) {
		if len(fields) == 0 {
			return nil, errors.Wrapf(ErrInvalidCommand, "%s does not take any arguments", command)
		}
		return nil, errors.Wrapf(ErrInvalidCommand, "%s requires %s", command, strings.Join(fields, ", "))
	}

	for i, field := range fields {
		if !intFields[field] {
			request[field] = args[i]
			continue
		}
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidCommand, "%s must be an integer, got %q", field, args[i])
		}
		request[field] = n
	}
	return request, nil
}
