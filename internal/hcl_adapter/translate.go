package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/specialistvlad/viewbind/internal/config"
	"github.com/specialistvlad/viewbind/internal/ctxlog"
)

// translateFile converts one decoded file into the agnostic model, leaving
// unset everything the file does not mention.
func translateFile(ctx context.Context, root *fileRoot) (*config.Model, error) {
	model := &config.Model{}
	if root.Assemblies != nil {
		model.Assemblies = append([]string{}, (*root.Assemblies)...)
	}
	if root.Startup != nil {
		model.Startup = *root.Startup
	}
	if root.Naming != nil {
		naming, err := translateNaming(ctx, root.Naming)
		if err != nil {
			return nil, err
		}
		model.Naming = naming
	}
	return model, nil
}

func translateNaming(ctx context.Context, b *namingBlock) (config.Naming, error) {
	logger := ctxlog.FromContext(ctx)
	n := config.Naming{Strict: b.Strict}

	if !isExprDefined(ctx, b.NamespaceMap, "namespace_map") {
		return n, nil
	}

	val, diags := b.NamespaceMap.Value(nil)
	if diags.HasErrors() {
		return n, fmt.Errorf("evaluating namespace_map: %w", diags)
	}
	if val.IsNull() {
		return n, nil
	}

	mapVal, err := convert.Convert(val, cty.Map(cty.String))
	if err != nil {
		return n, fmt.Errorf("namespace_map must be a map of strings: %w", err)
	}

	namespaceMap := map[string]string{}
	if mapVal.LengthInt() > 0 {
		if err := gocty.FromCtyValue(mapVal, &namespaceMap); err != nil {
			return n, fmt.Errorf("decoding namespace_map: %w", err)
		}
	}
	logger.Debug("Namespace map decoded.", "entries", len(namespaceMap))
	n.NamespaceMap = namespaceMap
	return n, nil
}
