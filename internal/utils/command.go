package utils

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

/**
 * Render a command line from templates
 * @param {string} command - Program path template
 * @param {[]string} args - Argument templates, one per argument
 * @param {interface{}} data - Values referenced by the templates
 * @returns {(string, []string, error)} Rendered program and arguments
 * @description
 * - Each argument is rendered on its own, so values containing spaces stay one argument
 */
func GetCommandLine(command string, args []string, data interface{}) (string, []string, error) {
	cmdTemplate, err := template.New("command").Option("missingkey=error").Parse(command)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse command template: %w", err)
	}

	var cmdBuf bytes.Buffer
	if err := cmdTemplate.Execute(&cmdBuf, data); err != nil {
		return "", nil, fmt.Errorf("failed to execute command template: %w", err)
	}

	processedArgs := make([]string, 0, len(args))
	for _, arg := range args {
		argTemplate, err := template.New("arg").Option("missingkey=error").Parse(arg)
		if err != nil {
			return "", nil, fmt.Errorf("failed to parse arg template '%s': %w", arg, err)
		}

		var argBuf bytes.Buffer
		if err := argTemplate.Execute(&argBuf, data); err != nil {
			return "", nil, fmt.Errorf("failed to execute arg template '%s': %w", arg, err)
		}

		processedArgs = append(processedArgs, strings.TrimSpace(argBuf.String()))
	}

	return cmdBuf.String(), processedArgs, nil
}
