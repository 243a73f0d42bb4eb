package deepresearch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DocumentsTool manages markdown research notes under a single base
// directory inside the bot workspace.
type DocumentsTool struct {
	baseDir string
}

func NewDocumentsTool(baseDir string) (*DocumentsTool, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("failed to create documents directory: %w", err)
	}
	return &DocumentsTool{baseDir: abs}, nil
}

func (d *DocumentsTool) Name() string {
	return "documents"
}

func (d *DocumentsTool) Description() string {
	return "Manage markdown research notes: 'create', 'read', 'write' (overwrite), 'append', 'list' and 'delete'. Use this to accumulate findings across research steps."
}

func (d *DocumentsTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"command": map[string]any{
				"type":        "string",
				"enum":        []string{"create", "read", "write", "append", "list", "delete"},
				"description": "The operation to perform",
			},
			"filename": map[string]any{
				"type":        "string",
				"description": "Document name; the .md suffix is added automatically",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "Markdown content (for 'create', 'write' and 'append')",
			},
		},
		"required": []string{"command"},
	}
}

func (d *DocumentsTool) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Command  string `json:"command"`
		Filename string `json:"filename"`
		Content  string `json:"content"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("invalid input: %v", err)
	}

	if args.Command == "list" {
		return d.list()
	}

	path, name, err := d.resolve(args.Filename)
	if err != nil {
		return "", err
	}

	switch args.Command {
	case "create":
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("document already exists: %s", name)
		}
		if err := os.WriteFile(path, []byte(args.Content), 0644); err != nil {
			return "", fmt.Errorf("failed to create document: %w", err)
		}
		return fmt.Sprintf("Created %s", name), nil

	case "read":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read document: %w", err)
		}
		return string(data), nil

	case "write":
		if err := os.WriteFile(path, []byte(args.Content), 0644); err != nil {
			return "", fmt.Errorf("failed to write document: %w", err)
		}
		return fmt.Sprintf("Wrote %s", name), nil

	case "append":
		content := args.Content
		if existing, err := os.ReadFile(path); err == nil {
			content = string(existing) + "\n" + content
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return "", fmt.Errorf("failed to append to document: %w", err)
		}
		return fmt.Sprintf("Appended to %s", name), nil

	case "delete":
		if err := os.Remove(path); err != nil {
			return "", fmt.Errorf("failed to delete document: %w", err)
		}
		return fmt.Sprintf("Deleted %s", name), nil

	default:
		return "Invalid command. Use 'create', 'read', 'write', 'append', 'list' or 'delete'.", nil
	}
}

// resolve normalizes the document name and confines it to the base dir.
func (d *DocumentsTool) resolve(filename string) (path, name string, err error) {
	if strings.TrimSpace(filename) == "" {
		return "", "", fmt.Errorf("filename is required")
	}
	name = filename
	if !strings.HasSuffix(name, ".md") {
		name += ".md"
	}

	path = filepath.Join(d.baseDir, name)
	rel, err := filepath.Rel(d.baseDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", "", fmt.Errorf("unsafe document path: %s", filename)
	}
	return path, name, nil
}

func (d *DocumentsTool) list() (string, error) {
	entries, err := os.ReadDir(d.baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to list documents: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "No documents yet.", nil
	}

	sort.Strings(names)
	return strings.Join(names, "\n"), nil
}
