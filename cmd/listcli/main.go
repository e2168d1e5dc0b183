package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/inhibitor1217/too-many-lists/internal/repl"
	"github.com/inhibitor1217/too-many-lists/internal/utils"
)

// argParser parses and validates the command and its arguments.
func argParser(input string) (map[string]interface{}, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no command entered")
	}

	command := strings.ToUpper(parts[0])
	request := map[string]interface{}{
		"command": command,
	}

	switch command {
	case "LPUSH", "RPUSH":
		// LPUSH/RPUSH require a key and a value
		if len(parts) < 3 {
			return nil, fmt.Errorf("%s requires a key and value", command)
		}
		request["key"] = parts[1]
		request["value"] = strings.Join(parts[2:], " ")

	case "LPOP", "RPOP", "LLEN", "LITEMS", "DEL":
		// These require only a key
		if len(parts) < 2 {
			return nil, fmt.Errorf("%s requires a key", command)
		}
		if len(parts) > 2 {
			return nil, fmt.Errorf("%s takes only a key", command)
		}
		request["key"] = parts[1]

	case "LINSERT":
		// LINSERT requires a key, an index and a value
		if len(parts) < 4 {
			return nil, fmt.Errorf("LINSERT requires a key, index and value")
		}
		index, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("index must be an integer")
		}
		request["key"] = parts[1]
		request["index"] = index
		request["value"] = strings.Join(parts[3:], " ")

	case "LREM":
		// LREM requires a key and an index
		if len(parts) != 3 {
			return nil, fmt.Errorf("LREM requires a key and index")
		}
		index, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("index must be an integer")
		}
		request["key"] = parts[1]
		request["index"] = index

	case "LSPLIT":
		// LSPLIT requires a key, an index and a destination key
		if len(parts) != 4 {
			return nil, fmt.Errorf("LSPLIT requires a key, index and destination key")
		}
		index, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("index must be an integer")
		}
		request["key"] = parts[1]
		request["index"] = index
		request["dest"] = parts[3]

	case "LMERGE":
		// LMERGE requires a destination key and a source key
		if len(parts) != 3 {
			return nil, fmt.Errorf("LMERGE requires a destination key and source key")
		}
		request["key"] = parts[1]
		request["source"] = parts[2]

	case "KEYS":
		// KEYS requires no additional arguments
		if len(parts) > 1 {
			return nil, fmt.Errorf("KEYS does not require any arguments")
		}

	default:
		return nil, fmt.Errorf("unknown command: %s", command)
	}

	return request, nil
}

// printResponse renders a handler response on the console.
func printResponse(response map[string]interface{}) {
	if status, _ := response["status"].(string); status != "OK" {
		fmt.Println("Error:", response["message"])
		return
	}
	if values, ok := response["values"].([]string); ok {
		fmt.Println("[" + strings.Join(values, ", ") + "]")
		return
	}
	if value, ok := response["value"]; ok {
		fmt.Println(value)
		return
	}
	fmt.Println("OK")
}

func main() {
	configPtr := flag.String("config", "", "Path to the config file")
	debugPtr := flag.Bool("debug", false, "Log debug output to the console")
	flag.Parse()

	configPath := *configPtr
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			fmt.Println("Error getting home directory:", err)
			return
		}
		configPath = filepath.Join(homeDir, ".listcli", "listcli.conf")
	}

	config, err := utils.LoadConfig(configPath)
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		return
	}

	logger := utils.NewLogger(config.LogFile, config.Debug || *debugPtr)
	logger.Info("Loaded configurations from " + configPath)

	handler := repl.NewCommandHandler(repl.NewWorkspace())

	fmt.Println("listcli ready. Type commands (e.g., RPUSH todo buy milk, LITEMS todo) and press Enter.")
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print(config.Prompt)
		input, err := reader.ReadString('\n')
		if err != nil {
			// EOF or closed stdin ends the session.
			fmt.Println()
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			logger.Info("Session ended")
			return
		}

		request, err := argParser(input)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}

		printResponse(handler.HandleCommand(request))
	}
}
