// Package layout converts caller-supplied page margins, always expressed in
// centimeters at the engine boundary, into the native unit system of each
// export format.
//
// PDF uses points (1cm = 28.35pt), DOCX uses twips (1/20 of a point,
// 1cm ≈ 566.9 twips). Resolution never fails: absent or invalid input falls
// back to the documented defaults (50pt per side for PDF, 1134 twips ≈ 2cm
// per side for DOCX).
package layout
