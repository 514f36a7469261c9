/*
Copyright © 2022 - 2024 SUSE LLC

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

package utils

import (
	"github.com/hashicorp/go-multierror"
)

const (
	errorOnly = iota
	always
)

type CleanFunc func() error

type cleanJob struct {
	cleanFunc CleanFunc
	jobType   int
}

// CleanStack is a LIFO list of cleanup jobs run once an action finishes
type CleanStack struct {
	jobs []cleanJob
}

func NewCleanStack() *CleanStack {
	return &CleanStack{}
}

// Push adds a job that always runs
func (clean *CleanStack) Push(cFunc CleanFunc) {
	clean.jobs = append(clean.jobs, cleanJob{cleanFunc: cFunc, jobType: always})
}

// PushErrorOnly adds a job that only runs if the action failed
func (clean *CleanStack) PushErrorOnly(cFunc CleanFunc) {
	clean.jobs = append(clean.jobs, cleanJob{cleanFunc: cFunc, jobType: errorOnly})
}

// Cleanup runs all pending jobs in reverse order. The given error decides
// whether error only jobs run; it is returned together with any job error.
// A failing job turns later error only jobs on.
func (clean *CleanStack) Cleanup(err error) error {
	var errs error
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	for i := len(clean.jobs) - 1; i >= 0; i-- {
		job := clean.jobs[i]
		if job.jobType == errorOnly && errs == nil {
			continue
		}
		if jErr := job.cleanFunc(); jErr != nil {
			errs = multierror.Append(errs, jErr)
		}
	}
	clean.jobs = nil

	// Hand back the original error untouched when nothing else failed
	if merr, ok := errs.(*multierror.Error); ok && len(merr.Errors) == 1 && err != nil {
		return err
	}
	return errs
}
