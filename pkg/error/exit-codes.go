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

// provides a custom error interface and exit codes to use on the processor cli
package error

//
// Provided exit codes for the processor
// To keep them documented respect the structure:
//
// comment that explains the error
// const NamedConstant = ERRORCODE
//

// Error changing permissions of a file
const ChmodFile = 10

// Error creating a file
const CreateFile = 16

// Error decoding the finals payloads
const DecodeFinals = 31

// Error querying the memory of the host
const MemoryInfo = 32

// Error reading the finals file
const ReadingFinals = 33

// Requested feature is not implemented
const Unimplemented = 34

// Error writing to a file
const WriteFile = 35

// Error loading the configuration
const ReadingConfig = 36

// Unknown error
const Unknown int = 255
