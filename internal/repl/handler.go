package repl

import (
	"strings"

	"github.com/inhibitor1217/too-many-lists/internal/utils"
)

// CommandHandler processes parsed commands against a workspace and builds
// response maps for the REPL to render.
type CommandHandler struct {
	Workspace *Workspace
}

// NewCommandHandler creates a handler over the given workspace.
func NewCommandHandler(ws *Workspace) *CommandHandler {
	return &CommandHandler{Workspace: ws}
}

// HandleCommand processes a request map and returns the response map.
func (h *CommandHandler) HandleCommand(request map[string]interface{}) map[string]interface{} {
	logger := utils.GetLogger()

	command, ok := request["command"].(string)
	if !ok {
		return errorResponse("Invalid or missing 'command' field")
	}

	command = strings.ToUpper(command)
	logger.Debug("Handling command: " + command)

	switch command {
	case "LPUSH", "RPUSH":
		key, keyOk := request["key"].(string)
		value, valueOk := request["value"].(string)
		if !keyOk || !valueOk {
			return errorResponse(command + " requires 'key', 'value' fields")
		}
		var err error
		if command == "LPUSH" {
			err = h.Workspace.LPush(key, value)
		} else {
			err = h.Workspace.RPush(key, value)
		}
		if err != nil {
			return errorResponse(err.Error())
		}
		return map[string]interface{}{"status": "OK"}

	case "LPOP", "RPOP":
		key, ok := request["key"].(string)
		if !ok {
			return errorResponse(command + " requires a 'key' field")
		}
		var value string
		var err error
		if command == "LPOP" {
			value, err = h.Workspace.LPop(key)
		} else {
			value, err = h.Workspace.RPop(key)
		}
		if err != nil {
			return errorResponse(err.Error())
		}
		return map[string]interface{}{"status": "OK", "value": value}

	case "LLEN":
		key, ok := request["key"].(string)
		if !ok {
			return errorResponse("LLEN requires a 'key' field")
		}
		length, err := h.Workspace.Len(key)
		if err != nil {
			return errorResponse(err.Error())
		}
		return map[string]interface{}{"status": "OK", "value": length}

	case "LITEMS":
		key, ok := request["key"].(string)
		if !ok {
			return errorResponse("LITEMS requires a 'key' field")
		}
		items, err := h.Workspace.Items(key)
		if err != nil {
			return errorResponse(err.Error())
		}
		return map[string]interface{}{"status": "OK", "values": items}

	case "LINSERT":
		key, keyOk := request["key"].(string)
		index, indexOk := request["index"].(int)
		value, valueOk := request["value"].(string)
		if !keyOk || !indexOk || !valueOk {
			return errorResponse("LINSERT requires 'key', 'index', 'value' fields")
		}
		if err := h.Workspace.Insert(key, index, value); err != nil {
			return errorResponse(err.Error())
		}
		return map[string]interface{}{"status": "OK"}

	case "LREM":
		key, keyOk := request["key"].(string)
		index, indexOk := request["index"].(int)
		if !keyOk || !indexOk {
			return errorResponse("LREM requires 'key', 'index' fields")
		}
		value, err := h.Workspace.Remove(key, index)
		if err != nil {
			return errorResponse(err.Error())
		}
		return map[string]interface{}{"status": "OK", "value": value}

	case "LSPLIT":
		key, keyOk := request["key"].(string)
		index, indexOk := request["index"].(int)
		dest, destOk := request["dest"].(string)
		if !keyOk || !indexOk || !destOk {
			return errorResponse("LSPLIT requires 'key', 'index', 'dest' fields")
		}
		if err := h.Workspace.Split(key, index, dest); err != nil {
			return errorResponse(err.Error())
		}
		return map[string]interface{}{"status": "OK"}

	case "LMERGE":
		key, keyOk := request["key"].(string)
		source, sourceOk := request["source"].(string)
		if !keyOk || !sourceOk {
			return errorResponse("LMERGE requires 'key', 'source' fields")
		}
		if err := h.Workspace.Merge(key, source); err != nil {
			return errorResponse(err.Error())
		}
		return map[string]interface{}{"status": "OK"}

	case "KEYS":
		return map[string]interface{}{"status": "OK", "values": h.Workspace.Keys()}

	case "DEL":
		key, ok := request["key"].(string)
		if !ok {
			return errorResponse("DEL requires a 'key' field")
		}
		if err := h.Workspace.Drop(key); err != nil {
			return errorResponse(err.Error())
		}
		return map[string]interface{}{"status": "OK"}

	default:
		return errorResponse("Unknown command: " + command)
	}
}

// errorResponse builds an error response map.
func errorResponse(message string) map[string]interface{} {
	return map[string]interface{}{"status": "ERROR", "message": message}
}
