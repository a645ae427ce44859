// Package reportkit provides a fluent API for updating Word-format
// report templates: provisioning a working copy, rewriting the revision
// table, filling project-info fields, and converting the result to PDF.
//
// Basic usage:
//
//	results, diags := reportkit.Template("template.docx").
//	    OutputDir("out").
//	    Revisions(report.Record{Revision: "A", Date: "2025-03-01", Status: "Definitief"}).
//	    Fields(reportkit.FieldValues{ProjectName: "Roof A", Client: "Acme"}).
//	    PDF(convert.NewLibreOffice()).
//	    Run()
//	if !results.OK {
//	    log.Println(report.FormatDiagnostics(diags))
//	}
//
// Each stage runs one open-mutate-save cycle on the working copy; the
// template itself is never modified. For finer control the workcopy,
// report, and convert packages are also available directly.
package reportkit

import (
	"fmt"

	"github.com/mwalraven/reportkit/convert"
	"github.com/mwalraven/reportkit/report"
	"github.com/mwalraven/reportkit/workcopy"
)

// FieldValues holds the project-info fields written by the Fields stage.
type FieldValues struct {
	ProjectName string
	Client      string
	Date        string
	Version     string
	Author      string
	CheckedBy   string
}

// Results reports the paths produced by a pipeline run.
type Results struct {
	TemplatePath string
	WorkingPath  string
	PDFPath      string
	OK           bool
}

// Pipeline configures a template update run. Each configuration method
// returns a new Pipeline instance, making chains safe to reuse.
type Pipeline struct {
	template  string
	outputDir string
	fileName  string
	records   []report.Record
	fields    *FieldValues
	converter convert.Converter

	// Accumulated configuration error (fail-fast).
	err error
}

// Template starts a pipeline for the given template file.
func Template(path string) *Pipeline {
	return &Pipeline{template: path}
}

// clone creates a shallow copy so chain methods stay immutable.
func (p *Pipeline) clone() *Pipeline {
	cp := *p
	cp.records = append([]report.Record(nil), p.records...)
	return &cp
}

// OutputDir sets the directory for the working copy. Default is the
// template's own directory.
func (p *Pipeline) OutputDir(dir string) *Pipeline {
	cp := p.clone()
	cp.outputDir = dir
	return cp
}

// FileName sets the working copy's file name. Default is the template's
// file name; a missing .docx extension is appended.
func (p *Pipeline) FileName(name string) *Pipeline {
	cp := p.clone()
	cp.fileName = name
	return cp
}

// Revisions adds a revision-table rewrite stage writing one row per
// record, in order.
func (p *Pipeline) Revisions(records ...report.Record) *Pipeline {
	cp := p.clone()
	if len(records) == 0 {
		cp.err = fmt.Errorf("Revisions requires at least one record")
		return cp
	}
	cp.records = append([]report.Record(nil), records...)
	return cp
}

// Fields adds a project-info update stage.
func (p *Pipeline) Fields(values FieldValues) *Pipeline {
	cp := p.clone()
	cp.fields = &values
	return cp
}

// PDF adds a conversion stage using the given converter.
func (p *Pipeline) PDF(conv convert.Converter) *Pipeline {
	cp := p.clone()
	cp.converter = conv
	return cp
}

// Run provisions the working copy and applies the configured stages in
// order, stopping at the first failed stage. The returned diagnostics
// aggregate every stage that ran.
func (p *Pipeline) Run() (Results, []report.Diagnostic) {
	if p.err != nil {
		return Results{}, []report.Diagnostic{report.Errorf("%v", p.err)}
	}

	results := Results{TemplatePath: p.template}

	copied, diags := workcopy.Provision(workcopy.Request{
		TemplatePath: p.template,
		OutputDir:    p.outputDir,
		FileName:     p.fileName,
		Create:       true,
	})
	if !copied.OK {
		return results, diags
	}
	results.WorkingPath = copied.WorkingPath

	if len(p.records) > 0 {
		res, d := report.UpdateRevisions(report.RevisionRequest{
			Path:    copied.WorkingPath,
			Records: p.records,
			Apply:   true,
		})
		diags = append(diags, d...)
		if !res.OK {
			return results, diags
		}
	}

	if p.fields != nil {
		res, d := report.SetFields(report.FieldRequest{
			Path:        copied.WorkingPath,
			ProjectName: p.fields.ProjectName,
			Client:      p.fields.Client,
			Date:        p.fields.Date,
			Version:     p.fields.Version,
			Author:      p.fields.Author,
			CheckedBy:   p.fields.CheckedBy,
			Apply:       true,
		})
		diags = append(diags, d...)
		if !res.OK {
			return results, diags
		}
	}

	if p.converter != nil {
		res, d := report.RenderPDF(report.RenderRequest{
			Path:  copied.WorkingPath,
			Apply: true,
		}, p.converter)
		diags = append(diags, d...)
		if !res.OK {
			return results, diags
		}
		results.PDFPath = res.Path
	}

	results.OK = true
	return results, diags
}
