/*
Copyright 2026 The Kubeflow authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pipeline

import (
	"fmt"
	"io"
	"os"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/util/yaml"

	"github.com/kubeflow/medallion-bench/api/v1beta2"
)

// LoadSparkApplication reads a manifest file and returns its SparkApplication
// document. The object stays unstructured so that spec fields this tooling does
// not model still reach the API server intact. Documents of other kinds in the
// same file are ignored.
func LoadSparkApplication(path string) (*unstructured.Unstructured, error) {
	manifest, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %v", path, err)
	}
	defer manifest.Close()

	decoder := yaml.NewYAMLOrJSONDecoder(manifest, 100)
	for {
		var out unstructured.Unstructured
		if err := decoder.Decode(&out); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to decode manifest %s: %v", path, err)
		}

		gvk := out.GroupVersionKind()
		if gvk.Group == v1beta2.GroupVersion.Group && gvk.Kind == "SparkApplication" {
			return &out, nil
		}
	}

	return nil, fmt.Errorf("no SparkApplication document found in %s", path)
}
