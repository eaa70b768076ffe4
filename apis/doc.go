/*
   Copyright 2025 The DIRPX Authors

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

// Package apis defines the public Go-level contracts of dcore error
// handling at transport boundaries.
//
// HTTP and gRPC adapters, loggers and user-defined mapping tables target the
// small interfaces and view types declared here instead of the concrete
// *dcore.Error. The package only depends on the code registry and on the
// gRPC status code enumeration.
package apis
