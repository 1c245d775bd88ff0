package node

import (
	"context"
	"fmt"
	"sort"

	"sendseven/internal/sendseven"
	"sendseven/internal/types"
)

// Options loads the dynamic dropdown values the host asks for at
// configuration time.
type Options struct {
	Client *sendseven.Client
}

// Load returns the options for a named dropdown.
func (o *Options) Load(ctx context.Context, name string) ([]types.OptionItem, error) {
	switch name {
	case "channels":
		return o.fromList(o.Client.ListChannels(ctx))
	case "tags":
		return o.fromList(o.Client.ListTags(ctx))
	case "teammates":
		return o.fromList(o.Client.ListTeammates(ctx))
	case "templates":
		return o.templates(ctx)
	default:
		return nil, fmt.Errorf("unknown options source %q", name)
	}
}

func (o *Options) fromList(rows []map[string]any, err error) ([]types.OptionItem, error) {
	if err != nil {
		return nil, err
	}
	options := make([]types.OptionItem, 0, len(rows))
	for _, row := range rows {
		options = append(options, types.OptionItem{
			Name:  stringField(row, "name"),
			Value: stringField(row, "id"),
		})
	}
	sortOptions(options)
	return options, nil
}

// templates keys on the template name rather than an ID; that is what the
// send-template endpoint expects.
func (o *Options) templates(ctx context.Context) ([]types.OptionItem, error) {
	rows, err := o.Client.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]types.OptionItem, 0, len(rows))
	for _, row := range rows {
		name := stringField(row, "name")
		label := name
		if lang := stringField(row, "language"); lang != "" {
			label = fmt.Sprintf("%s (%s)", name, lang)
		}
		options = append(options, types.OptionItem{Name: label, Value: name})
	}
	sortOptions(options)
	return options, nil
}

func sortOptions(options []types.OptionItem) {
	sort.Slice(options, func(i, j int) bool { return options[i].Name < options[j].Name })
}

func stringField(row map[string]any, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	if v, ok := row[key]; ok && v != nil {
		return fmt.Sprintf("%v", v)
	}
	return ""
}
