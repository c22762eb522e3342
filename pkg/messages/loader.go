package messages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML merges templates from YAML content. The top level keys are
// languages; nested keys are flattened with dots:
//
//	en:
//	  fields:
//	    email: Email
//	  validation:
//	    required: "%{field} is required"
func (c *Catalog) LoadYAML(ctx context.Context, content []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrLoadingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return errors.Join(ErrFailedToParseYAML, err)
	}
	return c.merge(data)
}

// LoadJSON merges templates from JSON content with the same layout as LoadYAML.
func (c *Catalog) LoadJSON(ctx context.Context, content []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrLoadingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return errors.Join(ErrFailedToParseJSON, err)
	}
	return c.merge(data)
}

// LoadFS merges every .yaml, .yml and .json file under dir in fsys.
// Files with other extensions are skipped.
func (c *Catalog) LoadFS(ctx context.Context, fsys fs.FS, dir string) error {
	return fs.WalkDir(fsys, dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Join(ErrFailedToReadFile, err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Join(ErrLoadingCancelled, ctxErr)
		}
		if d.IsDir() {
			return nil
		}

		var load func(context.Context, []byte) error
		switch strings.ToLower(path.Ext(name)) {
		case ".yaml", ".yml":
			load = c.LoadYAML
		case ".json":
			load = c.LoadJSON
		default:
			return nil
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return errors.Join(ErrFailedToReadFile, err)
		}
		if err := load(ctx, content); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		c.logger.DebugContext(ctx, "messages loaded", "file", name)
		return nil
	})
}

func (c *Catalog) merge(data map[string]any) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: no languages found", ErrInvalidCatalog)
	}

	flat := make(map[string]map[string]string, len(data))
	for lang, val := range data {
		if strings.TrimSpace(lang) == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		tree, ok := val.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidCatalog, lang, val)
		}
		templates := make(map[string]string)
		if err := flatten("", tree, templates); err != nil {
			return fmt.Errorf("%w: language %q: %v", ErrInvalidCatalog, lang, err)
		}
		flat[lang] = templates
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for lang, templates := range flat {
		c.add(lang, templates)
	}
	c.rebuild()
	return nil
}

func flatten(prefix string, tree map[string]any, out map[string]string) error {
	for key, val := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := val.(type) {
		case string:
			out[full] = v
		case map[string]any:
			if err := flatten(full, v, out); err != nil {
				return err
			}
		case nil:
			return fmt.Errorf("key %q has no value", full)
		default:
			out[full] = stringify(v)
		}
	}
	return nil
}
