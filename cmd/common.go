/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/valpere/medtran/internal"
	"github.com/valpere/medtran/internal/config"
	"github.com/valpere/medtran/internal/engine"
	"github.com/valpere/medtran/internal/logging"
	"github.com/valpere/medtran/internal/service"
	"github.com/valpere/medtran/internal/validator"
)

// buildService constructs the two per-direction engines and wraps them
// in a Service. Both engines are built eagerly so a misconfigured
// provider fails at startup, not on the first request.
func buildService(ctx context.Context, cfg *config.Config) (*service.Service, error) {
	toFrench, err := engine.New(ctx, cfg.ToFrench, internal.ToFrench)
	if err != nil {
		return nil, fmt.Errorf("failed to build en→fr engine: %w", err)
	}
	toEnglish, err := engine.New(ctx, cfg.ToEnglish, internal.ToEnglish)
	if err != nil {
		return nil, fmt.Errorf("failed to build fr→en engine: %w", err)
	}

	opts := []service.Option{service.WithLogger(logging.L())}
	if cfg.ValidateOutput {
		opts = append(opts, service.WithValidator(validator.New()))
	}
	return service.New(toFrench, toEnglish, opts...), nil
}
