/*
Package config loads typedmap settings from YAML or JSON and turns them into
functional options for maps and registries.

# Settings

	name: request-scope   # label used in log output
	metrics: true         # record OpenTelemetry metrics
	log_level: debug      # debug, info, warn or error

Missing fields keep their defaults (see Default). Unknown fields are
rejected so typos surface at load time.

# Usage

	s, err := config.FromFile("typedmap.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	m := s.NewMap(nil) // nil logger: a text logger on stderr at log_level

Or build options and pass them yourself:

	reg := registry.New(s.RegistryOptions(logger)...)
	m := typedmap.New(append(s.MapOptions(logger), typedmap.WithRegistry(reg))...)
*/
package config
