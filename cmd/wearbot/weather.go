package main

import (
	"encoding/json"
	"fmt"
	"os"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type WeatherCommand struct {
	schema.WeatherRequest
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *WeatherCommand) Run(ctx *Globals) (err error) {
	cfg, err := ctx.Configuration()
	if err != nil {
		return err
	}

	// Flag units take precedence over configured units
	units, err := schema.ParseUnits(cmd.Units)
	if err != nil {
		return err
	} else if cmd.Units == "" && cfg.Units != "" {
		if units, err = schema.ParseUnits(string(cfg.Units)); err != nil {
			return err
		}
	}
	location := cmd.Location
	if location == "" {
		location = cfg.DefaultCity
	}

	client, err := ctx.Weather(cfg)
	if err != nil {
		return err
	}

	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "WeatherCommand",
		attribute.String("location", location),
		attribute.String("units", string(units)),
	)
	defer func() { endSpan(err) }()

	record, err := client.Current(parent, location, units)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
