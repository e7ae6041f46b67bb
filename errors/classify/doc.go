// Package classify converts lower-level failures into categorized errors.
//
// A Registry holds an ordered list of Classifiers. Each Classifier
// recognizes failures from one source (the standard library, go-git,
// go-github, YAML or TOML decoders) and reports the Category they belong to
// together with diagnostic metadata such as the path, URL or line number.
// The first match wins; unrecognized failures fall back to CategoryUnknown.
//
// Classification only chooses the category. Severity, reference and
// description stay the caller's decision:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return classify.Wrap(err, errors.SeverityError, "CONFIG", "cannot read configuration")
//	}
//	// [FILE SYSTEM] ERR | Ref: FSY-CONFIG | cannot read configuration | Source: open ...: no such file or directory
//
// With Result pipelines:
//
//	cfg := classify.Map(errors.Of(load(path)), errors.SeverityCritical, "CONFIG", "cannot load configuration").OrExit()
package classify
