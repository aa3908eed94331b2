// Package styler applies Bootstrap styling to the element tree of a rendered
// form widget.
//
// An Engine receives one build-view event per widget and runs a fixed rule
// pipeline over it: label and error classes, column layout, form-control,
// inline style, styled select, styled upload, input groups, the errors child
// and the error state. Every rule reads its switches from the configuration
// resolved for the widget's form and can be disabled by name through
// form.disabled-rules.
//
//	engine, err := styler.New(
//		styler.WithResolver(resolver),
//		styler.WithAssetSink(registry),
//		styler.WithLanguage("de"),
//	)
//	if err != nil {
//		return err
//	}
//	if err := engine.OnBuildView(event); err != nil {
//		return err
//	}
package styler
